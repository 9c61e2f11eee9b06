package dossier

import "github.com/zoobzio/sentinel"

// ClassName returns the class name a struct type T is registered under:
// its unqualified Go type name.
func ClassName[T any]() string {
	return sentinel.Scan[T]().TypeName
}
