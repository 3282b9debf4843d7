// Package lox adds the slice helpers samber/lo lacks: mapping with an error
// and mapping between named string types.
package lox

func MapErr[T, R any](collection []T, iteratee func(item T) (R, error)) ([]R, error) {
	var err error

	result := make([]R, len(collection))

	for i, item := range collection {
		result[i], err = iteratee(item)
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

// Strings converts between slices of string kinded types.
func Strings[R, T ~string](collection []T) []R {
	result := make([]R, len(collection))

	for i, item := range collection {
		result[i] = R(item)
	}

	return result
}
