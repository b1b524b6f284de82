package evaluator

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestEvalSnapshots snapshots the full printed output of representative
// JBS programs, one per language feature combination, the way the
// teacher's fixture suite snapshots a script's captured stdout per test
// case rather than asserting on each value individually.
func TestEvalSnapshots(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"fibonacci_recursive", `
			let fib = function(n) {
				if (n < 2) { return n; }
				return fib(n - 1) + fib(n - 2);
			};
			let i = 0;
			while (i < 10) {
				print(fib(i));
				i = i + 1;
			}
		`},
		{"closures_share_state", `
			let make_counter = function() {
				let n = 0;
				return function() {
					n = n + 1;
					return n;
				};
			};
			let c = make_counter();
			print(c(), c(), c());
		`},
		{"list_and_string_builtins", `
			let xs = [3, 1, 2];
			list_append(xs, 4);
			print(list_size(xs), xs[0], xs[3]);
			print(str_upper("mix"), str_slice("hello world", 0, 5));
		`},
		{"default_args", `
			let greet = function(name, greeting = "hello") {
				return greeting + ", " + name;
			};
			print(greet("a"));
			print(greet("b", "hi"));
		`},
		{"json_round_trip", `
			let data = [1, "two", true, null];
			let encoded = json_encode(data);
			print(encoded);
			print(json_decode(encoded));
		`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := run(t, tc.src)
			snaps.MatchSnapshot(t, out)
		})
	}
}
