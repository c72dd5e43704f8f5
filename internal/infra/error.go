package infra

import (
	"errors"

	"lardocepet-api/internal/pkg/errs"
)

type GatewayErrorKind string

// Record-store error kinds. KindUpstream and KindBadResponse are transport
// failures and must never be collapsed into KindNotFound: "store unreachable"
// is not "record does not exist".
const (
	KindNotFound     GatewayErrorKind = "NOT_FOUND"
	KindUpstream     GatewayErrorKind = "UPSTREAM_FAILURE"
	KindBadResponse  GatewayErrorKind = "BAD_RESPONSE"
	KindDuplicateKey GatewayErrorKind = "DUPLICATE_KEY"
)

type GatewayError struct {
	Kind GatewayErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e GatewayError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e GatewayError) Unwrap() error {
	return e.err
}

func WrapGatewayErr(kind GatewayErrorKind, msg string, err error) error {
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return GatewayError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind GatewayErrorKind) bool {
	var e GatewayError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// IsUnavailable reports whether err represents a store we could not get a
// usable answer from, as opposed to a definitive lookup result.
func IsUnavailable(err error) bool {
	return IsKind(err, KindUpstream) || IsKind(err, KindBadResponse)
}
