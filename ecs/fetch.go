package ecs

import "reflect"

// fetcher is implemented by *Read[T] and *Write[T].
type fetcher interface {
	fetch(s *Storage)
	release()
}

// Fetch acquires every handle declared by the struct type Q and returns it
// populated. Each exported field of Q must be a Read[X] or a Write[X]:
//
//	q := ecs.Fetch[struct {
//		Pos ecs.Write[Position]
//		Vel ecs.Read[Velocity]
//	}](w)
//
// Fields are acquired independently in declaration order, so a Write on one
// kind never blocks a Read on another. Two fields naming the same kind with
// conflicting mutability panic with ErrBorrowConflict; the handles acquired
// before the conflict are released first.
func Fetch[Q any](p Provider) Q {
	var q Q
	FetchInto(p, &q)
	return q
}

// FetchInto is Fetch for an existing request struct.
func FetchInto[Q any](p Provider, q *Q) {
	s := p.storage()

	value := reflect.ValueOf(q).Elem()
	if value.Kind() != reflect.Struct {
		panic(wrapf(ErrInvalidFetch, "%s is not a struct", value.Type()))
	}

	fetchers := make([]fetcher, 0, value.NumField())
	for i := 0; i < value.NumField(); i++ {
		field := value.Field(i)
		fieldType := value.Type().Field(i)

		if !field.CanSet() {
			continue
		}

		f, ok := field.Addr().Interface().(fetcher)
		if !ok {
			panic(wrapf(ErrInvalidFetch, "field %s of %s is %s, not a Read or Write handle", fieldType.Name, value.Type(), fieldType.Type))
		}
		fetchers = append(fetchers, f)
	}

	acquired := 0
	defer func() {
		if acquired == len(fetchers) {
			return
		}
		for _, f := range fetchers[:acquired] {
			f.release()
		}
	}()

	for _, f := range fetchers {
		f.fetch(s)
		acquired++
	}
}

// ReleaseAll releases every handle held by a request struct filled by Fetch.
func ReleaseAll[Q any](q *Q) {
	value := reflect.ValueOf(q).Elem()
	if value.Kind() != reflect.Struct {
		return
	}
	for i := 0; i < value.NumField(); i++ {
		field := value.Field(i)
		if !field.CanSet() {
			continue
		}
		if f, ok := field.Addr().Interface().(fetcher); ok {
			f.release()
		}
	}
}
