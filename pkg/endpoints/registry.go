package endpoints

import "fmt"

// AuthEndpoints holds the absolute URLs of the AUTH category.
type AuthEndpoints struct {
	Login          string
	Register       string
	VerifyOTP      string
	ResendOTP      string
	Me             string
	ForgotPassword string
	ResetPassword  string
}

// AdminEndpoints holds the absolute URLs of the ADMIN category.
type AdminEndpoints struct {
	AllUsers     string
	MasterAdd    string
	MasterStatus string
	SlaveAdd     string
	SlaveDelete  string
	AllSlaves    string
	AllMasters   string
}

// UserEndpoints holds the absolute URLs of the USER category.
type UserEndpoints struct {
	Profile string
}

// Entry describes a single resolved endpoint.
type Entry struct {
	Category Category `json:"category" yaml:"category"`
	Name     Name     `json:"name" yaml:"name"`
	Method   string   `json:"method" yaml:"method"`
	Path     string   `json:"path" yaml:"path"`
	URL      string   `json:"url" yaml:"url"`
}

// Registry maps every endpoint to its absolute URL for one base URL.
// A Registry is read-only; accessors hand out copies.
type Registry struct {
	auth  AuthEndpoints
	admin AdminEndpoints
	user  UserEndpoints

	baseURL string
	entries []Entry
	index   map[Category]map[Name]Entry
}

// New builds a Registry by prefixing every endpoint path with baseURL.
// The base URL is used verbatim; no trailing-slash handling or escaping is applied.
func New(baseURL string) *Registry {
	r := &Registry{
		auth: AuthEndpoints{
			Login:          baseURL + PathLogin,
			Register:       baseURL + PathRegister,
			VerifyOTP:      baseURL + PathVerifyOTP,
			ResendOTP:      baseURL + PathResendOTP,
			Me:             baseURL + PathMe,
			ForgotPassword: baseURL + PathForgotPassword,
			ResetPassword:  baseURL + PathResetPassword,
		},
		admin: AdminEndpoints{
			AllUsers:     baseURL + PathAllUsers,
			MasterAdd:    baseURL + PathMasterAdd,
			MasterStatus: baseURL + PathMasterStatus,
			SlaveAdd:     baseURL + PathSlaveAdd,
			SlaveDelete:  baseURL + PathSlaveDelete,
			AllSlaves:    baseURL + PathAllSlaves,
			AllMasters:   baseURL + PathAllMasters,
		},
		user: UserEndpoints{
			Profile: baseURL + PathProfile,
		},
		baseURL: baseURL,
		entries: make([]Entry, 0, len(routes)),
		index:   make(map[Category]map[Name]Entry, len(Categories())),
	}

	for _, rt := range routes {
		e := Entry{
			Category: rt.category,
			Name:     rt.name,
			Method:   rt.method,
			Path:     rt.path,
			URL:      baseURL + rt.path,
		}
		r.entries = append(r.entries, e)
		if r.index[rt.category] == nil {
			r.index[rt.category] = make(map[Name]Entry)
		}
		r.index[rt.category][rt.name] = e
	}

	return r
}

// Auth returns a copy of the AUTH endpoints.
func (r *Registry) Auth() AuthEndpoints {
	return r.auth
}

// Admin returns a copy of the ADMIN endpoints.
func (r *Registry) Admin() AdminEndpoints {
	return r.admin
}

// User returns a copy of the USER endpoints.
func (r *Registry) User() UserEndpoints {
	return r.user
}

// BaseURL returns the base URL the registry was built from.
func (r *Registry) BaseURL() string {
	return r.baseURL
}

// Lookup returns the absolute URL of the endpoint identified by category and name.
func (r *Registry) Lookup(category Category, name Name) (string, error) {
	e, err := r.Find(category, name)
	if err != nil {
		return "", err
	}
	return e.URL, nil
}

// MustLookup is like Lookup but panics if the endpoint does not exist.
func (r *Registry) MustLookup(category Category, name Name) string {
	url, err := r.Lookup(category, name)
	if err != nil {
		panic(err)
	}
	return url
}

// Find returns the full entry of the endpoint identified by category and name.
func (r *Registry) Find(category Category, name Name) (Entry, error) {
	names, ok := r.index[category]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}
	e, ok := names[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s.%s", ErrUnknownEndpoint, category, name)
	}
	return e, nil
}

// Entries returns every endpoint in registry order.
// The returned slice is a copy and may be modified by the caller.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// ByCategory returns the endpoints of a single category in registry order.
func (r *Registry) ByCategory(category Category) ([]Entry, error) {
	if _, ok := r.index[category]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}
	var out []Entry
	for _, e := range r.entries {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out, nil
}
