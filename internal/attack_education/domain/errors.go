package domain

import "errors"

var ErrUnknownAttackType = errors.New("unknown attack type")
