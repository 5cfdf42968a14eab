package plan

import (
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"automap/internal/match"
	"automap/internal/surface"
)

type OrderRequest struct {
	ID       int64
	Customer string
	Count    string
	Discount *int32
	Extra    string
}

type Order struct {
	ID       int64
	Customer string
	Count    int32
	Discount int32
	Email    string
}

type Named interface {
	Name() string
	SetName(string)
}

type Person struct {
	Name string
	Age  int
}

func buildOrder(t *testing.T) *Configuration {
	t.Helper()

	return NewBuilder(nil).Build(reflect.TypeFor[OrderRequest](), reflect.TypeFor[*Order]())
}

func TestBuild(t *testing.T) {
	cfg := buildOrder(t)

	assert.Equal(t, reflect.TypeFor[OrderRequest](), cfg.Source())
	assert.Equal(t, reflect.TypeFor[*Order](), cfg.Target())
	assert.Equal(t, []string{"ID", "Customer", "Discount"}, cfg.Copied(), spew.Sdump(cfg.Members()))
	assert.Equal(t, []string{"Count", "Email"}, cfg.Ignored(), spew.Sdump(cfg.Members()))
}

func TestBuild_Directives(t *testing.T) {
	cfg := buildOrder(t)

	assert.Equal(t, match.DirectiveCopy, cfg.Directive("ID"))
	assert.Equal(t, match.DirectiveCopy, cfg.Directive("Discount"))
	assert.Equal(t, match.DirectiveIgnore, cfg.Directive("Count"))
	assert.Equal(t, match.DirectiveIgnore, cfg.Directive("Email"))
	// Source-only members are not part of the plan.
	assert.Equal(t, match.DirectiveIgnore, cfg.Directive("Extra"))
}

func TestBuild_MemberPlans(t *testing.T) {
	members := buildOrder(t).Members()
	require.Len(t, members, 5)

	discount := members[3]
	assert.Equal(t, "Discount", discount.Target.Name)
	assert.Equal(t, "Discount", discount.Source.Name)
	assert.Equal(t, reflect.TypeFor[*int32](), discount.Source.Type)
	assert.Equal(t, match.ConversionUnwrap, discount.Verdict.Conversion)

	email := members[4]
	assert.Empty(t, email.Source.Name)
	assert.Equal(t, match.ReasonAbsent, email.Verdict.Reason)

	for _, m := range members {
		assert.NotEqual(t, "Extra", m.Target.Name)
	}
}

func TestBuild_Diagnostics(t *testing.T) {
	cfg := buildOrder(t)

	require.Len(t, cfg.Diagnostics.Infos, 2)
	assert.Empty(t, cfg.Diagnostics.Warnings)

	count := cfg.Diagnostics.ByMember("Count")
	require.Len(t, count, 1)
	assert.Equal(t, match.ReasonBareMismatch, count[0].Code)
	assert.Equal(t, "plan.OrderRequest->*plan.Order", count[0].TypePair)
	assert.Contains(t, count[0].Message, "string")

	email := cfg.Diagnostics.ByMember("Email")
	require.Len(t, email, 1)
	assert.Equal(t, match.ReasonAbsent, email[0].Code)
}

func TestBuild_InterfaceTarget(t *testing.T) {
	cfg := NewBuilder(surface.NewResolver(nil)).Build(reflect.TypeFor[Person](), reflect.TypeFor[Named]())

	assert.Equal(t, []string{"Name"}, cfg.Copied())
	assert.Empty(t, cfg.Ignored())

	members := cfg.Members()
	require.Len(t, members, 1)
	assert.Equal(t, surface.MemberAccessor, members[0].Target.Kind)
	assert.Equal(t, surface.MemberField, members[0].Source.Kind)
}

func TestConfiguration_Ignore(t *testing.T) {
	cfg := buildOrder(t)

	same := cfg.Ignore("Customer", "Count", "Nope")
	assert.Same(t, cfg, same)

	assert.Equal(t, []string{"ID", "Discount"}, cfg.Copied())
	assert.Equal(t, []string{"Customer", "Count", "Email"}, cfg.Ignored())

	customer := cfg.Diagnostics.ByMember("Customer")
	require.Len(t, customer, 1)
	assert.Equal(t, ReasonExcluded, customer[0].Code)

	require.Len(t, cfg.Diagnostics.Warnings, 1)
	assert.Equal(t, CodeUnknownMember, cfg.Diagnostics.Warnings[0].Code)
	assert.Equal(t, "Nope", cfg.Diagnostics.Warnings[0].Member)

	// Already ignored by policy: no second note.
	assert.Len(t, cfg.Diagnostics.ByMember("Count"), 1)
}

func TestConfiguration_Clone(t *testing.T) {
	cfg := buildOrder(t)
	clone := cfg.Clone()

	clone.Ignore("ID")

	assert.Equal(t, match.DirectiveCopy, cfg.Directive("ID"))
	assert.Equal(t, match.DirectiveIgnore, clone.Directive("ID"))
	assert.Len(t, cfg.Diagnostics.Infos, 2)
	assert.Len(t, clone.Diagnostics.Infos, 3)
}
