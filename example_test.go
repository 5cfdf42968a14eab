package automap_test

import (
	"fmt"
	"reflect"

	"automap"
)

type SignupRequest struct {
	Email    string
	Password string
	Age      int32
	Referral *string
}

type Account struct {
	Email    string
	Age      *int32
	Referral string
	Role     string
}

func ExampleMap() {
	m := automap.New()

	ref := "friend"
	acc, err := automap.Map(m, SignupRequest{Email: "ada@example.com", Age: 36, Referral: &ref}, &Account{Role: "user"})
	if err != nil {
		panic(err)
	}

	fmt.Println(acc.Email, *acc.Age, acc.Referral, acc.Role)
	// Output:
	// ada@example.com 36 friend user
}

func ExampleConfigure() {
	m := automap.New()

	cfg := automap.Configure[SignupRequest, *Account](m)
	fmt.Println(cfg.Copied())
	fmt.Println(cfg.Ignored())

	cfg.Ignore("Referral")

	acc, _ := automap.MapWith(cfg, SignupRequest{Email: "x@example.com"}, &Account{Referral: "kept"})
	fmt.Println(acc.Referral)
	// Output:
	// [Email Age Referral]
	// [Role]
	// kept
}

type Shape interface {
	Name() string
	SetName(string)
}

type Polygon interface {
	Shape
	Sides() int
	SetSides(int)
}

type polygon struct {
	name  string
	sides int
}

func (p *polygon) Name() string     { return p.name }
func (p *polygon) SetName(n string) { p.name = n }
func (p *polygon) Sides() int       { return p.sides }
func (p *polygon) SetSides(n int)   { p.sides = n }

type PolygonDTO struct {
	Name  string
	Sides int
}

func ExampleWithGraph() {
	g := automap.NewGraph()
	g.MustDeclare(reflect.TypeFor[Polygon](), reflect.TypeFor[Shape]())

	m := automap.New(automap.WithGraph(g))

	p := &polygon{}
	if _, err := automap.Map[PolygonDTO, Polygon](m, PolygonDTO{Name: "square", Sides: 4}, p); err != nil {
		panic(err)
	}

	fmt.Println(p.name, p.sides)
	// Output:
	// square 4
}

func ExampleMapSeq() {
	users := []SignupRequest{{Email: "a@example.com"}, {Email: "b@example.com"}}

	for acc, err := range automap.MapSeq(nil, func(yield func(SignupRequest) bool) {
		for _, u := range users {
			if !yield(u) {
				return
			}
		}
	}, func() *Account { return &Account{} }) {
		if err != nil {
			panic(err)
		}

		fmt.Println(acc.Email)
	}
	// Output:
	// a@example.com
	// b@example.com
}
