// Package endpoints is the registry of absolute URLs exposed by the trading backend.
//
// Every endpoint is identified by a (Category, Name) pair from a closed set and resolves to
// the base URL followed by a fixed path. A Registry is built once from a base URL and is
// read-only afterwards, so it can be shared across goroutines without synchronization.
//
// Callers holding a *Registry should prefer the typed accessors (r.Auth().Login) which are
// checked at compile time. Lookup exists for identifiers that arrive as strings, such as CLI
// arguments.
package endpoints

import (
	"fmt"
	"net/http"
	"strings"
)

// Category groups endpoints by functional area.
type Category string

// Endpoint categories, in registry order.
const (
	CategoryAuth  Category = "AUTH"
	CategoryAdmin Category = "ADMIN"
	CategoryUser  Category = "USER"
)

// Name identifies an endpoint within its category.
type Name string

// AUTH endpoint names.
const (
	Login          Name = "LOGIN"
	Register       Name = "REGISTER"
	VerifyOTP      Name = "VERIFY_OTP"
	ResendOTP      Name = "RESEND_OTP"
	Me             Name = "ME"
	ForgotPassword Name = "FORGOT_PASSWORD"
	ResetPassword  Name = "RESET_PASSWORD"
)

// ADMIN endpoint names.
const (
	AllUsers     Name = "ALL_USERS"
	MasterAdd    Name = "MASTER_ADD"
	MasterStatus Name = "MASTER_STATUS"
	SlaveAdd     Name = "SLAVE_ADD"
	SlaveDelete  Name = "SLAVE_DELETE"
	AllSlaves    Name = "ALL_SLAVES"
	AllMasters   Name = "ALL_MASTERS"
)

// USER endpoint names.
const (
	Profile Name = "PROFILE"
)

// Endpoint paths. These are appended verbatim to the base URL.
const (
	PathLogin          = "/api/v1/auth/login"
	PathRegister       = "/api/v1/auth/register"
	PathVerifyOTP      = "/api/v1/auth/verify-otp"
	PathResendOTP      = "/api/v1/auth/send-otp"
	PathMe             = "/api/v1/auth/me"
	PathForgotPassword = "/api/v1/auth/forgot-password"
	PathResetPassword  = "/api/v1/auth/reset-password"

	PathAllUsers     = "/api/all-users"
	PathMasterAdd    = "/api/master-add"
	PathMasterStatus = "/api/master-status"
	PathSlaveAdd     = "/api/slave-add"
	PathSlaveDelete  = "/api/slave-delete"
	PathAllSlaves    = "/api/all-slaves"
	PathAllMasters   = "/api/all-masters"

	// PathProfile is the same resource as PathMe.
	PathProfile = PathMe
)

type route struct {
	category Category
	name     Name
	method   string
	path     string
}

var routes = []route{
	{CategoryAuth, Login, http.MethodPost, PathLogin},
	{CategoryAuth, Register, http.MethodPost, PathRegister},
	{CategoryAuth, VerifyOTP, http.MethodPost, PathVerifyOTP},
	{CategoryAuth, ResendOTP, http.MethodPost, PathResendOTP},
	{CategoryAuth, Me, http.MethodGet, PathMe},
	{CategoryAuth, ForgotPassword, http.MethodPost, PathForgotPassword},
	{CategoryAuth, ResetPassword, http.MethodPost, PathResetPassword},

	{CategoryAdmin, AllUsers, http.MethodGet, PathAllUsers},
	{CategoryAdmin, MasterAdd, http.MethodPost, PathMasterAdd},
	{CategoryAdmin, MasterStatus, http.MethodPost, PathMasterStatus},
	{CategoryAdmin, SlaveAdd, http.MethodPost, PathSlaveAdd},
	{CategoryAdmin, SlaveDelete, http.MethodDelete, PathSlaveDelete},
	{CategoryAdmin, AllSlaves, http.MethodGet, PathAllSlaves},
	{CategoryAdmin, AllMasters, http.MethodGet, PathAllMasters},

	{CategoryUser, Profile, http.MethodGet, PathProfile},
}

// Categories returns every category in registry order.
func Categories() []Category {
	return []Category{CategoryAuth, CategoryAdmin, CategoryUser}
}

// Names returns the endpoint names of a category in registry order.
func Names(category Category) ([]Name, error) {
	var names []Name
	for _, r := range routes {
		if r.category == category {
			names = append(names, r.name)
		}
	}
	if names == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}
	return names, nil
}

// ParseCategory converts user input such as "auth" into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(normalize(s))
	for _, known := range Categories() {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownCategory, s)
}

// ParseName converts user input such as "verify-otp" into a Name of the given category.
func ParseName(category Category, s string) (Name, error) {
	names, err := Names(category)
	if err != nil {
		return "", err
	}
	n := Name(normalize(s))
	for _, known := range names {
		if n == known {
			return n, nil
		}
	}
	return "", fmt.Errorf("%w: %s.%s", ErrUnknownEndpoint, category, s)
}

func normalize(s string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_"))
}
