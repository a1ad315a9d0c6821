package operator

import (
	"github.com/ducka/go-coracle/observe"
)

// If there is a commonly used sequence of operators in your code, use a Pipe
// function to extract the sequence into a new operator. Even if a sequence is
// not that common, breaking it out into a single operator can improve
// readability.
func Pipe1[S any, O1 any](
	stream *observe.Observable[S],
	f1 observe.OperatorFunc[S, O1],
) *observe.Observable[O1] {
	return f1(stream)
}

func Pipe2[S any, O1 any, O2 any](
	stream *observe.Observable[S],
	f1 observe.OperatorFunc[S, O1],
	f2 observe.OperatorFunc[O1, O2],
) *observe.Observable[O2] {
	return f2(f1(stream))
}

func Pipe3[S any, O1 any, O2 any, O3 any](
	stream *observe.Observable[S],
	f1 observe.OperatorFunc[S, O1],
	f2 observe.OperatorFunc[O1, O2],
	f3 observe.OperatorFunc[O2, O3],
) *observe.Observable[O3] {
	return f3(f2(f1(stream)))
}

func Pipe4[S any, O1 any, O2 any, O3 any, O4 any](
	stream *observe.Observable[S],
	f1 observe.OperatorFunc[S, O1],
	f2 observe.OperatorFunc[O1, O2],
	f3 observe.OperatorFunc[O2, O3],
	f4 observe.OperatorFunc[O3, O4],
) *observe.Observable[O4] {
	return f4(f3(f2(f1(stream))))
}

func Pipe5[S any, O1 any, O2 any, O3 any, O4 any, O5 any](
	stream *observe.Observable[S],
	f1 observe.OperatorFunc[S, O1],
	f2 observe.OperatorFunc[O1, O2],
	f3 observe.OperatorFunc[O2, O3],
	f4 observe.OperatorFunc[O3, O4],
	f5 observe.OperatorFunc[O4, O5],
) *observe.Observable[O5] {
	return f5(f4(f3(f2(f1(stream)))))
}

func Pipe6[S any, O1 any, O2 any, O3 any, O4 any, O5 any, O6 any](
	stream *observe.Observable[S],
	f1 observe.OperatorFunc[S, O1],
	f2 observe.OperatorFunc[O1, O2],
	f3 observe.OperatorFunc[O2, O3],
	f4 observe.OperatorFunc[O3, O4],
	f5 observe.OperatorFunc[O4, O5],
	f6 observe.OperatorFunc[O5, O6],
) *observe.Observable[O6] {
	return f6(f5(f4(f3(f2(f1(stream))))))
}

func Pipe7[S any, O1 any, O2 any, O3 any, O4 any, O5 any, O6 any, O7 any](
	stream *observe.Observable[S],
	f1 observe.OperatorFunc[S, O1],
	f2 observe.OperatorFunc[O1, O2],
	f3 observe.OperatorFunc[O2, O3],
	f4 observe.OperatorFunc[O3, O4],
	f5 observe.OperatorFunc[O4, O5],
	f6 observe.OperatorFunc[O5, O6],
	f7 observe.OperatorFunc[O6, O7],
) *observe.Observable[O7] {
	return f7(f6(f5(f4(f3(f2(f1(stream)))))))
}

func Pipe8[S any, O1 any, O2 any, O3 any, O4 any, O5 any, O6 any, O7 any, O8 any](
	stream *observe.Observable[S],
	f1 observe.OperatorFunc[S, O1],
	f2 observe.OperatorFunc[O1, O2],
	f3 observe.OperatorFunc[O2, O3],
	f4 observe.OperatorFunc[O3, O4],
	f5 observe.OperatorFunc[O4, O5],
	f6 observe.OperatorFunc[O5, O6],
	f7 observe.OperatorFunc[O6, O7],
	f8 observe.OperatorFunc[O7, O8],
) *observe.Observable[O8] {
	return f8(f7(f6(f5(f4(f3(f2(f1(stream))))))))
}
