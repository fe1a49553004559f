// Package inputval validates admin form input before it reaches the
// stores. Validation rules are declared as struct tags on small per-form
// input structs:
//
//	type createProjectInput struct {
//		Title    string `validate:"required,max=200" label:"Project title"`
//		ImageURL string `validate:"required,url" label:"Image URL"`
//		DemoURL  string `validate:"url" label:"Demo URL"`
//	}
//
// Supported rules: required, max=N, url, objectid, slug, icon.
package inputval

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/cerc-club/clubsite/internal/domain/models"
)

// Result collects validation failures in field declaration order.
type Result struct {
	errs []string
}

// HasErrors reports whether any rule failed.
func (r Result) HasErrors() bool { return len(r.errs) > 0 }

// First returns the first failure message, or "" if none.
func (r Result) First() string {
	if len(r.errs) == 0 {
		return ""
	}
	return r.errs[0]
}

// All returns every failure message.
func (r Result) All() []string { return r.errs }

func (r *Result) add(msg string) { r.errs = append(r.errs, msg) }

// Validate checks every string field of input against its validate tag.
// input must be a struct (not a pointer). Fields without a validate tag
// are ignored. Rules other than "required" are skipped for empty values,
// so optional URL fields validate only when supplied.
func Validate(input any) Result {
	var res Result

	v := reflect.ValueOf(input)
	t := v.Type()
	if t.Kind() != reflect.Struct {
		res.add("invalid input")
		return res
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		rules := field.Tag.Get("validate")
		if rules == "" || field.Type.Kind() != reflect.String {
			continue
		}

		label := field.Tag.Get("label")
		if label == "" {
			label = field.Name
		}
		value := strings.TrimSpace(v.Field(i).String())

		for _, rule := range strings.Split(rules, ",") {
			rule = strings.TrimSpace(rule)
			if rule == "required" {
				if value == "" {
					res.add(fmt.Sprintf("%s is required.", label))
				}
				continue
			}
			if value == "" {
				continue
			}
			switch {
			case strings.HasPrefix(rule, "max="):
				n, err := strconv.Atoi(strings.TrimPrefix(rule, "max="))
				if err == nil && len(value) > n {
					res.add(fmt.Sprintf("%s must be at most %d characters.", label, n))
				}
			case rule == "url":
				if !IsValidHTTPURL(value) {
					res.add(fmt.Sprintf("%s must be a valid http(s) URL.", label))
				}
			case rule == "objectid":
				if !IsValidObjectID(value) {
					res.add(fmt.Sprintf("%s is not a valid ID.", label))
				}
			case rule == "slug":
				if !IsValidSlug(value) {
					res.add(fmt.Sprintf("%s may only contain lowercase letters, digits, and hyphens.", label))
				}
			case rule == "icon":
				if !models.KnownIcon(value) {
					res.add(fmt.Sprintf("%s is not a recognized icon.", label))
				}
			}
		}
	}

	return res
}
