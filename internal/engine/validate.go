package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/maxviazov/football-match-engine/internal/lineup"
	"github.com/maxviazov/football-match-engine/internal/model"
)

// ErrInvalidInput is the marker error for teams that break the engine's input contract.
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid match input")

// FieldError describes a single invalid field of a MatchTeam.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string {
	parts := make([]string, 0, len(e.fields))
	for _, f := range e.fields {
		parts = append(parts, f.Field+" "+f.Message)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidInput, strings.Join(parts, "; "))
}
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

func newInvalidInput(fe []FieldError) error {
	if len(fe) == 0 {
		return nil
	}
	return &invalidInputError{fields: fe}
}

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	var ie *invalidInputError
	if errors.As(err, &ie) {
		return ie.Fields()
	}
	return nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Formation shape is checked here so unknown but well-formed shapes like 4-2-3-1 still pass.
	err := v.RegisterValidation("formation", func(fl validator.FieldLevel) bool {
		_, err := lineup.ParseFormation(fl.Field().String())
		return err == nil
	})
	if err != nil {
		panic(fmt.Sprintf("engine: register formation validation: %v", err))
	}
	return v
}

// teamRules mirrors MatchTeam with the rules the engine enforces on entry.
type teamRules struct {
	Name       string         `validate:"required"`
	Players    []model.Player `validate:"len=11,unique=ID,dive"`
	Formation  string         `validate:"required,formation"`
	Aggression int            `validate:"gte=0,lte=100"`
	Pressure   int            `validate:"gte=0,lte=100"`
}

// validateTeam checks the structural contract. Injuries and bans are not
// checked here; eligibility is decided upstream by the lineup package.
func validateTeam(label string, t model.MatchTeam) []FieldError {
	var out []FieldError
	err := validate.Struct(teamRules{
		Name:       t.Name,
		Players:    t.Players,
		Formation:  t.Formation,
		Aggression: t.Aggression,
		Pressure:   t.Pressure,
	})
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			out = append(out, FieldError{Field: label + "." + trimRoot(fe.Namespace()), Message: describe(fe)})
		}
	}

	outfield := 0
	for _, p := range t.Players {
		if p.PlayingPosition() != model.Goalkeeper {
			outfield++
		}
	}
	if len(t.Players) > 0 && outfield == 0 {
		out = append(out, FieldError{Field: label + ".players", Message: "must include at least one outfield player"})
	}
	return out
}

func trimRoot(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		ns = rest
	}
	if ns == "" {
		return ns
	}
	return strings.ToLower(ns[:1]) + ns[1:]
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "len":
		return fmt.Sprintf("must contain exactly %s entries", fe.Param())
	case "unique":
		return "must not repeat a player"
	case "gte":
		return "must be >= " + fe.Param()
	case "lte":
		return "must be <= " + fe.Param()
	case "oneof":
		return "must be one of " + fe.Param()
	case "formation":
		return "must be a dash-separated shape with ten outfield players"
	default:
		return "failed " + fe.Tag() + " check"
	}
}
