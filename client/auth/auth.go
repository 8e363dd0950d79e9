// Package auth is the top-level session state machine: Landing, the three
// auth views, and Authenticated. It orchestrates the session store, the
// registration wizard, the gamification counters and the remote identity
// service. Remote failures are converted to user-facing errors here and
// never propagate further; every failure path leaves the machine in a
// well-defined prior state.
package auth

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"ecoally/client/gamify"
	"ecoally/client/identity"
	"ecoally/client/nav"
	"ecoally/client/session"
	"ecoally/client/validate"
	"ecoally/client/wizard"
)

// State is the coarse position in the session lifecycle.
type State int

const (
	StateLanding State = iota
	StateAuth
	StateAuthenticated
)

// View is the active page within StateAuth.
type View int

const (
	ViewLogin View = iota
	ViewSignUp
	ViewUserInfo
)

// ErrInFlight is returned when an operation of the same type is already
// running. The UI disables the submit control for the duration of a call;
// this is the backstop against duplicate registrations and purchases.
var ErrInFlight = errors.New("operation already in progress")

// FormError reports local validation failures, keyed by field name. It
// never reaches the network.
type FormError struct {
	Fields validate.Errors
}

func (e *FormError) Error() string {
	for _, msg := range e.Fields {
		return msg
	}
	return "validation failed"
}

// User is the authenticated identity, with userType normalized to
// lower-case regardless of server casing.
type User struct {
	ID        string
	Email     string
	Phone     string
	Username  string
	UserType  string
	FirstName string
	LastName  string
}

// Controller drives the auth state machine. State transitions happen in
// response to discrete user actions or completed calls; the controller is
// owned by the UI event loop. Only the in-flight guard is synchronized, so
// calls dispatched on goroutines cannot double-submit.
type Controller struct {
	svc      identity.Service
	tokens   session.Store
	counters *gamify.Sync
	nav      *nav.Navigator
	log      zerolog.Logger

	state State
	view  View
	user  *User
	wiz   *wizard.Wizard

	restored bool

	mu       sync.Mutex
	inflight map[string]bool
}

// New wires a controller. The initial state is Landing until Restore runs.
func New(svc identity.Service, tokens session.Store, counters *gamify.Sync, navigator *nav.Navigator, log zerolog.Logger) *Controller {
	return &Controller{
		svc:      svc,
		tokens:   tokens,
		counters: counters,
		nav:      navigator,
		log:      log,
		state:    StateLanding,
		view:     ViewLogin,
		inflight: make(map[string]bool),
	}
}

func (c *Controller) State() State { return c.state }

func (c *Controller) View() View { return c.view }

// User returns the authenticated user, or nil.
func (c *Controller) User() *User { return c.user }

// Wizard returns the in-progress registration wizard, or nil outside the
// user-info view.
func (c *Controller) Wizard() *wizard.Wizard { return c.wiz }

// Restore re-authenticates a persisted token at startup. It runs exactly
// once, before any user-initiated action; callers gate initial render on
// its completion. Any failure clears the token and silently leaves the
// machine on Landing. The swallow is deliberate, so it is logged here for
// observability.
func (c *Controller) Restore(ctx context.Context) {
	if c.restored {
		return
	}
	c.restored = true

	if c.tokens.Token() == "" {
		return
	}
	if !c.begin("restore") {
		return
	}
	defer c.end("restore")

	me, err := c.svc.Me(ctx)
	if err != nil {
		c.log.Warn().Err(err).Msg("session restore failed, clearing stored token")
		if cerr := c.tokens.Clear(); cerr != nil {
			c.log.Error().Err(cerr).Msg("failed to clear stored token")
		}
		return
	}

	c.setAuthenticated(me.User, me.RoleRecord)
}

// GetStarted moves from Landing to the login view.
func (c *Controller) GetStarted() {
	if c.state == StateLanding {
		c.state = StateAuth
		c.view = ViewLogin
	}
}

// Login validates the form locally, then submits the credentials. Local
// failures return a *FormError without any network call. Remote failures
// return the service's message and leave the current view active.
func (c *Controller) Login(ctx context.Context, form validate.LoginForm) error {
	if errs := form.Validate(); !errs.OK() {
		return &FormError{Fields: errs}
	}
	if !c.begin("login") {
		return ErrInFlight
	}
	defer c.end("login")

	res, err := c.svc.Login(ctx, identity.Credentials{
		Identifier: form.Identifier(),
		Password:   form.Password,
		Role:       form.Role,
	})
	if err != nil {
		return err
	}

	if err := c.tokens.SetToken(res.Token); err != nil {
		c.log.Error().Err(err).Msg("failed to persist session token")
	}
	c.setAuthenticated(res.User, res.RoleRecord)
	c.log.Info().Str("username", res.User.Username).Msg("login successful")
	return nil
}

// ShowSignup switches the auth view to signup.
func (c *Controller) ShowSignup() {
	if c.state == StateAuth {
		c.view = ViewSignUp
	}
}

// BackToLogin returns to the login view.
func (c *Controller) BackToLogin() {
	if c.state == StateAuth {
		c.view = ViewLogin
	}
}

// SubmitSignup validates the initial identity and opens the user-info
// wizard carrying it forward. No network call happens yet; uniqueness is
// the registration call's problem.
func (c *Controller) SubmitSignup(form validate.SignUpForm) error {
	if errs := form.Validate(); !errs.OK() {
		return &FormError{Fields: errs}
	}
	c.wiz = wizard.New(form.Identifier(), form.Username, form.Password)
	c.view = ViewUserInfo
	return nil
}

// BackToSignUp returns from the wizard to the signup view. The draft is
// kept so a returning user does not retype the wizard steps.
func (c *Controller) BackToSignUp() {
	if c.state == StateAuth && c.view == ViewUserInfo {
		c.view = ViewSignUp
	}
}

// CompleteRegistration submits the wizard's merged draft. The caller
// advances the wizard through its steps first; this refuses drafts whose
// final step does not validate. On success the new account is signed in
// with all counters at zero. On failure the user stays in the user-info
// view with the service's message.
func (c *Controller) CompleteRegistration(ctx context.Context) error {
	if c.wiz == nil {
		return errors.New("no registration in progress")
	}
	if errs := c.wiz.ValidateStep(c.wiz.TotalSteps()); !errs.OK() {
		return &FormError{Fields: errs}
	}
	if !c.begin("register") {
		return ErrInFlight
	}
	defer c.end("register")

	res, err := c.svc.Register(ctx, registerPayload(c.wiz.Draft()))
	if err != nil {
		return err
	}

	if err := c.tokens.SetToken(res.Token); err != nil {
		c.log.Error().Err(err).Msg("failed to persist session token")
	}
	c.wiz = nil
	c.setAuthenticated(res.User, res.RoleRecord)
	c.log.Info().Str("username", res.User.Username).Msg("registration completed")
	return nil
}

// PurchaseShield buys a streak shield. Nothing is mutated before the
// authoritative response; on success only coins and streakShields are
// replaced with the server's values.
func (c *Controller) PurchaseShield(ctx context.Context) error {
	if c.state != StateAuthenticated {
		return errors.New("not signed in")
	}
	if !c.begin("purchase") {
		return ErrInFlight
	}
	defer c.end("purchase")

	res, err := c.svc.PurchaseShield(ctx)
	if err != nil {
		return err
	}
	c.counters.Apply(gamify.Snapshot{
		Coins:         gamify.Int(res.Coins),
		StreakShields: gamify.Int(res.StreakShields),
	})
	return nil
}

// Logout clears the session, the user, the counters and the navigation
// state, returning to Landing.
func (c *Controller) Logout() {
	if err := c.tokens.Clear(); err != nil {
		c.log.Error().Err(err).Msg("failed to clear stored token")
	}
	c.user = nil
	c.wiz = nil
	c.counters.Reset()
	c.nav.Reset()
	c.state = StateLanding
	c.view = ViewLogin
}

func (c *Controller) setAuthenticated(u identity.User, record *identity.RoleRecord) {
	c.user = &User{
		ID:        u.ID,
		Email:     u.Email,
		Phone:     u.Phone,
		Username:  u.Username,
		UserType:  strings.ToLower(u.UserType),
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}

	var counters gamify.Counters
	if record != nil {
		counters = gamify.Counters{
			Points:        record.Points,
			Coins:         record.Coins,
			CurrentStreak: record.CurrentStreak,
			LongestStreak: record.LongestStreak,
			StreakShields: record.StreakShields,
		}
	}
	c.counters.Seed(counters)
	c.state = StateAuthenticated
	c.view = ViewLogin
}

// registerPayload shapes the draft for the service: userType upper-cased,
// the admin identifier remapped to adminRole, and the signup identifier
// split into email or phone.
func registerPayload(d wizard.Draft) identity.RegisterPayload {
	p := identity.RegisterPayload{
		Username: d.Username,
		Password: d.Password,
		UserType: strings.ToUpper(string(d.Role)),

		FirstName:   d.FirstName,
		LastName:    d.LastName,
		DateOfBirth: d.DateOfBirth,
		Gender:      d.Gender,
		City:        d.City,
		Address:     d.Address,

		GuardianName:         d.GuardianName,
		GuardianRelationship: d.GuardianRelationship,
		GuardianEmail:        d.GuardianEmail,
		GuardianPhone:        d.GuardianPhone,
		GuardianAddress:      d.GuardianAddress,
		GuardianOccupation:   d.GuardianOccupation,

		InstituteName: d.InstituteName,
		InstituteCity: d.InstituteCity,
		InstituteID:   d.InstituteID,

		AcademicRollNo: d.AcademicRollNo,
		GradeYear:      d.GradeYear,
		SectionCourse:  d.SectionCourse,
		FacultyID:      d.FacultyID,
		AdminRole:      d.AdminID,
		RolePassword:   d.RolePassword,
	}
	if strings.Contains(d.Identifier, "@") {
		p.Email = d.Identifier
	} else {
		p.Phone = d.Identifier
	}
	return p
}

func (c *Controller) begin(op string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inflight[op] {
		return false
	}
	c.inflight[op] = true
	return true
}

func (c *Controller) end(op string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.inflight, op)
}
