package rop_test

import (
	"context"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/ib-77/outcome/pkg/rop"
	"github.com/ib-77/outcome/pkg/rop/promise"
)

func ExampleResult_OnSuccess() {
	res := rop.Some(10).ToResult().OnSuccess(func(n rop.Maybe[int]) rop.Result[int] {
		return rop.FromValue(n.MustValue() * 25)
	})
	fmt.Println(res, res.ValueUnsafe())
	// Output:
	// [object Result: FULFILLED] 250
}

func ExampleResult_OnFailure() {
	res := rop.Failuref[string]("user %d not found", 7).
		OnSuccess(func(m rop.Maybe[string]) rop.Result[string] {
			return rop.FromValue("hello " + m.MustValue())
		}).
		OnFailure(func(err error) rop.Result[string] {
			return rop.FromValue("guest")
		})
	fmt.Println(res.ValueUnsafe())
	// Output:
	// guest
}

func ExampleWrap() {
	res := rop.Wrap(func() (int, error) {
		panic(errors.New("e"))
	})
	fmt.Println(res.OK(), res.Reason())
	// Output:
	// false e
}

func ExampleResult_MarshalJSON() {
	for _, r := range []rop.Result[string]{
		rop.Success("done"),
		rop.Void[string](),
		rop.Failuref[string]("x"),
	} {
		data, _ := json.Marshal(r)
		fmt.Println(string(data))
	}
	// Output:
	// {"status":"fulfilled","value":"done"}
	// {"status":"fulfilled"}
	// {"status":"rejected","reason":{}}
}

func ExampleAsyncResult() {
	res := rop.AsyncResult[int](context.Background(), promise.Reject[int]("boom"))
	fmt.Println(res.OK(), res.Reason())
	// Output:
	// false boom
}
