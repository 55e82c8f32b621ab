package validate_test

import (
	"testing"

	"github.com/shashiranjanraj/ridewithme/pkg/validate"
)

type listing struct {
	Brand    string  `json:"brand" validate:"required"`
	Price    int     `json:"price" validate:"required,gt=0"`
	Image    string  `json:"image" validate:"required,url"`
	Rating   float64 `json:"rating" validate:"between=0,5"`
	Category string  `json:"category" validate:"required,in=Supercar,Hypercar,Sport,Grand Tourer,Électrique"`
	Email    string  `json:"email" validate:"nullable,email"`
}

func valid() listing {
	return listing{
		Brand:    "Ferrari",
		Price:    250,
		Image:    "https://example.com/car.jpg",
		Rating:   4.9,
		Category: "Supercar",
	}
}

func TestStruct_Valid(t *testing.T) {
	errs := validate.Struct(valid())
	if validate.HasErrors(errs) {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestStruct_Required(t *testing.T) {
	in := valid()
	in.Brand = "  "

	errs := validate.Struct(in)
	if errs["brand"] == "" {
		t.Fatalf("expected brand error, got %v", errs)
	}
}

func TestStruct_MultiValueIn(t *testing.T) {
	in := valid()
	in.Category = "Grand Tourer" // value containing a space, listed mid-rule

	if errs := validate.Struct(in); validate.HasErrors(errs) {
		t.Fatalf("expected no errors, got %v", errs)
	}

	in.Category = "Sedan"
	if errs := validate.Struct(in); errs["category"] == "" {
		t.Fatal("expected category error for unknown value")
	}
}

func TestStruct_Between(t *testing.T) {
	in := valid()
	in.Rating = 5.1

	if errs := validate.Struct(in); errs["rating"] == "" {
		t.Fatalf("expected rating error, got %v", errs)
	}
}

func TestStruct_GtRejectsZero(t *testing.T) {
	in := valid()
	in.Price = 0

	if errs := validate.Struct(in); errs["price"] == "" {
		t.Fatal("expected price error for zero")
	}
}

func TestStruct_NullableSkipsEmpty(t *testing.T) {
	in := valid()
	in.Email = ""
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		t.Fatalf("expected empty nullable field to pass, got %v", errs)
	}

	in.Email = "not-an-email"
	if errs := validate.Struct(in); errs["email"] == "" {
		t.Fatal("expected email error for malformed value")
	}
}

func TestStruct_URL(t *testing.T) {
	in := valid()
	in.Image = "ftp://example.com/car.jpg"

	if errs := validate.Struct(in); errs["image"] == "" {
		t.Fatal("expected image error for non-http URL")
	}
}

func TestStruct_Pointer(t *testing.T) {
	in := valid()
	if errs := validate.Struct(&in); validate.HasErrors(errs) {
		t.Fatalf("expected pointer input to validate, got %v", errs)
	}
}
