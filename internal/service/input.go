package service

import (
	"encoding/json"
	"strings"
	"time"
)

// Opt is a scalar input field that remembers whether the client sent it.
// It binds from JSON bodies and from form values.
type Opt[T any] struct {
	v   T
	set bool
}

func Some[T any](v T) Opt[T] {
	return Opt[T]{v: v, set: true}
}

func (o Opt[T]) Get() (T, bool) {
	return o.v, o.set
}

func (o *Opt[T]) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		return nil
	}
	// form clients often send numbers and booleans as strings
	if unq := strings.Trim(s, `"`); len(s) > 1 && s[0] == '"' {
		if err := json.Unmarshal([]byte(unq), &o.v); err == nil {
			o.set = true
			return nil
		}
	}
	if err := json.Unmarshal(data, &o.v); err != nil {
		return err
	}
	o.set = true
	return nil
}

func (o *Opt[T]) UnmarshalParam(param string) error {
	param = strings.TrimSpace(param)
	if param == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(param), &o.v); err != nil {
		return err
	}
	o.set = true
	return nil
}

func (o Opt[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return json.Marshal(o.v)
}

// List is a string list input accepting a JSON array, a JSON encoded array
// inside a string, or a comma separated string. An empty list counts as not
// provided.
type List struct {
	v   []string
	set bool
}

func ListOf(items ...string) List {
	return List{v: items, set: len(items) > 0}
}

func (l List) Get() ([]string, bool) {
	return l.v, l.set
}

func (l *List) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		l.assign(arr)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return l.UnmarshalParam(s)
}

func (l *List) UnmarshalParam(param string) error {
	param = strings.TrimSpace(param)
	if strings.HasPrefix(param, "[") {
		var arr []string
		if err := json.Unmarshal([]byte(param), &arr); err != nil {
			return err
		}
		l.assign(arr)
		return nil
	}
	l.assign(strings.Split(param, ","))
	return nil
}

func (l *List) assign(items []string) {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	l.v = out
	l.set = len(out) > 0
}

// Append adds items, marking the list as provided when any were added.
func (l *List) Append(items ...string) {
	l.assign(append(l.v, items...))
}

func mergeString(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

func mergeOpt[T any](dst *T, o Opt[T]) {
	if v, ok := o.Get(); ok {
		*dst = v
	}
}

func mergeList(dst *[]string, l List) {
	if v, ok := l.Get(); ok {
		*dst = v
	}
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseDate accepts RFC 3339 timestamps and the shorter layouts HTML date
// inputs produce. Layouts without a zone are read as UTC.
func parseDate(field, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, invalid("Invalid " + field + " format")
}

func mergeDate(field string, dst *time.Time, s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	t, err := parseDate(field, s)
	if err != nil {
		return err
	}
	*dst = t
	return nil
}

func mergeDatePtr(field string, dst **time.Time, s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	t, err := parseDate(field, s)
	if err != nil {
		return err
	}
	*dst = &t
	return nil
}
