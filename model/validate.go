package model

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"restaurant_system/constants"
)

type fieldRules struct {
	problems []string
}

func (f *fieldRules) required(field, value string, limit int) {
	if strings.TrimSpace(value) == "" {
		f.problems = append(f.problems, field+" is required")
		return
	}
	f.maxLen(field, &value, limit)
}

func (f *fieldRules) maxLen(field string, value *string, limit int) {
	if value != nil && utf8.RuneCountInString(*value) > limit {
		f.problems = append(f.problems, field+" exceeds "+strconv.Itoa(limit)+" characters")
	}
}

func (f *fieldRules) nonNegative(field string, value decimal.Decimal) {
	if value.IsNegative() {
		f.problems = append(f.problems, field+" must not be negative")
	}
}

func (f *fieldRules) reference(field string, id uint) {
	if id == 0 {
		f.problems = append(f.problems, field+" is required")
	}
}

func (f *fieldRules) err() error {
	if len(f.problems) == 0 {
		return nil
	}
	return errors.Wrap(constants.ErrValidation, strings.Join(f.problems, "; "))
}

func (c Category) PrimaryKey() uint { return c.ID }

func (c Category) Validate() error {
	rules := fieldRules{}
	rules.required("name", c.Name, 100)
	return rules.err()
}

func (p Product) PrimaryKey() uint { return p.ID }

func (p Product) Validate() error {
	rules := fieldRules{}
	rules.required("name", p.Name, 100)
	rules.maxLen("description", p.Description, 255)
	rules.maxLen("photo", p.Photo, 255)
	rules.nonNegative("price", p.Price)
	rules.reference("categoryId", p.CategoryID)
	return rules.err()
}

func (e Extra) PrimaryKey() uint { return e.ID }

func (e Extra) Validate() error {
	rules := fieldRules{}
	rules.required("name", e.Name, 100)
	rules.maxLen("description", e.Description, 255)
	rules.nonNegative("additionalPrice", e.AdditionalPrice)
	rules.reference("productId", e.ProductID)
	return rules.err()
}

func (s Staff) PrimaryKey() uint { return s.ID }

func (s Staff) Validate() error {
	rules := fieldRules{}
	rules.required("name", s.Name, 100)
	rules.required("username", s.Username, 50)
	rules.required("password", s.Password, 60)
	return rules.err()
}

func (t Table) PrimaryKey() uint { return t.ID }

func (t Table) Validate() error {
	rules := fieldRules{}
	rules.required("name", t.Name, 50)
	return rules.err()
}
