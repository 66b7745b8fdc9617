// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package linktoken

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strconv"
	"time"
)

// Reason identifies why a capability link was rejected. Rejections are
// surfaced with their specific reason, never collapsed to a generic error.
type Reason string

const (
	// ReasonMissingParameters: one or two of org/exp/sig present. Partial
	// parameters always deny; they never downgrade to the default identity.
	ReasonMissingParameters Reason = "missing_parameters"
	// ReasonBadSignature: the sig parameter does not match the HMAC.
	ReasonBadSignature Reason = "bad_signature"
	// ReasonExpired: signature valid but the expiry timestamp has passed.
	ReasonExpired Reason = "expired"
	// ReasonMalformed: undecodable query or non-integer expiry.
	ReasonMalformed Reason = "malformed"
)

// RejectedError is returned when a link fails validation. Terminal for the
// request: no form is presented and no submission is possible.
type RejectedError struct {
	Reason Reason
}

func (e *RejectedError) Error() string {
	return "link rejected: " + string(e.Reason)
}

// ValidatedLink is the sole trusted source of organization identity.
// Downstream code must never read the org name from raw query input.
type ValidatedLink struct {
	OrgName   string
	IsDefault bool
}

// Params carries the raw scoping triple from a request's query string,
// tracking presence separately from value so that absent and empty are
// distinguishable.
type Params struct {
	Org    string
	Exp    string
	Sig    string
	HasOrg bool
	HasExp bool
	HasSig bool
}

// ParseParams extracts the scoping triple from a raw query string.
// Percent-decoding happens here; a query that cannot be decoded is Malformed.
func ParseParams(rawQuery string) (Params, error) {
	vals, err := url.ParseQuery(rawQuery)
	if err != nil {
		return Params{}, &RejectedError{Reason: ReasonMalformed}
	}
	var p Params
	if v, ok := vals["org"]; ok {
		p.Org, p.HasOrg = v[0], true
	}
	if v, ok := vals["exp"]; ok {
		p.Exp, p.HasExp = v[0], true
	}
	if v, ok := vals["sig"]; ok {
		p.Sig, p.HasSig = v[0], true
	}
	return p, nil
}

// Sign computes the lowercase hex HMAC-SHA256 over "org|exp". The message
// uses the decoded organization name and the raw string form of the expiry,
// exactly as the issuer signs it.
func Sign(orgName, exp string, secret []byte) string {
	h := hmac.New(sha256.New, secret)
	h.Write([]byte(orgName + "|" + exp))
	return hex.EncodeToString(h.Sum(nil))
}

// Validate decides whether a scoping triple is authentic, current, and
// complete.
//
// Three-way branching, preserved exactly:
//   - all three absent: the unscoped default identity (the only accepted
//     no-scoping path)
//   - partial presence: MissingParameters
//   - all present: signature check (constant time), then expiry check
//
// The expiry is inclusive: now == exp still validates.
func Validate(p Params, now time.Time, secret []byte, defaultOrg string) (ValidatedLink, error) {
	switch {
	case !p.HasOrg && !p.HasExp && !p.HasSig:
		return ValidatedLink{OrgName: defaultOrg, IsDefault: true}, nil
	case !p.HasOrg || !p.HasExp || !p.HasSig:
		return ValidatedLink{}, &RejectedError{Reason: ReasonMissingParameters}
	}

	expected := Sign(p.Org, p.Exp, secret)
	if !hmac.Equal([]byte(expected), []byte(p.Sig)) {
		return ValidatedLink{}, &RejectedError{Reason: ReasonBadSignature}
	}

	exp, err := strconv.ParseInt(p.Exp, 10, 64)
	if err != nil {
		return ValidatedLink{}, &RejectedError{Reason: ReasonMalformed}
	}
	if now.Unix() > exp {
		return ValidatedLink{}, &RejectedError{Reason: ReasonExpired}
	}

	return ValidatedLink{OrgName: p.Org}, nil
}

// BuildURL assembles a shareable signed link for an organization: the issuer
// side of Validate. base is the absolute form URL without scoping parameters.
func BuildURL(base, orgName string, expiresAt time.Time, secret []byte) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	exp := strconv.FormatInt(expiresAt.Unix(), 10)
	q := u.Query()
	q.Set("org", orgName)
	q.Set("exp", exp)
	q.Set("sig", Sign(orgName, exp, secret))
	u.RawQuery = q.Encode()
	return u.String(), nil
}
