package rights

import "errors"

var ErrNoUserSelected = errors.New("no user selected for rights editing")
