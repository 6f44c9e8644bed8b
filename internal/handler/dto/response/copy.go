package response

import "github.com/jinzhu/copier"

// mustCopy panics only on mismatched types, which CustomRecovery reports as a 500.
func mustCopy[T any](src any) *T {
	dst := new(T)
	if err := copier.CopyWithOption(dst, src, copier.Option{DeepCopy: true}); err != nil {
		panic(err)
	}
	return dst
}

func copyList[T any, S any](src []*S) []*T {
	res := make([]*T, len(src))
	for i, s := range src {
		res[i] = mustCopy[T](s)
	}
	return res
}
