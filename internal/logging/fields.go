package logging

import "github.com/felixgeelhaar/bolt/v3"

// Field is a function that applies structured data to a log event.
type Field func(*bolt.Event) *bolt.Event

// Str adds a string field.
func Str(key, value string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str(key, value)
	}
}

// Int adds an int field.
func Int(key string, value int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int(key, value)
	}
}

// Bool adds a bool field.
func Bool(key string, value bool) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Bool(key, value)
	}
}

// Session adds the shell session id.
func Session(id string) Field {
	return Str("session", id)
}

// Route adds a route field.
func Route(route string) Field {
	return Str("route", route)
}

// FromRoute adds the route a transition left.
func FromRoute(route string) Field {
	return Str("from", route)
}

// ToRoute adds the route a transition entered.
func ToRoute(route string) Field {
	return Str("to", route)
}

// Theme adds a theme field.
func Theme(name string) Field {
	return Str("theme", name)
}

// ErrorField adds an error field.
func ErrorField(err error) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Err(err)
	}
}
