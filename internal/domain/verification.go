package domain

import "time"

// Verification is a single-use email ownership proof. At most one live
// code per user: issuing a new one replaces any previous code.
type Verification struct {
	Id      int64
	Code    string
	UserId  UserId
	Expires time.Time
}

func (v Verification) Expired(now time.Time) bool {
	return v.Expires.Before(now)
}
