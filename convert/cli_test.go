package convert

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestFromCLI(t *testing.T) {
	t.Run("lists", func(t *testing.T) {
		cases := []struct {
			in   string
			want []int
		}{
			{"123", []int{123}},
			{"1, 2, 3", []int{1, 2, 3}},
			{"[1, 2, 3]", []int{1, 2, 3}},
			{"[1, 2, 3, ]", []int{1, 2, 3}},
			{"", nil},
		}
		for _, c := range cases {
			got, err := FromCLI[[]int](c.in)
			if err != nil {
				t.Errorf("FromCLI(%q): %v", c.in, err)
				continue
			}
			if diff := cmp.Diff(c.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("FromCLI(%q) (-want +got):\n%s", c.in, diff)
			}
		}
	})

	t.Run("nested lists", func(t *testing.T) {
		cases := []struct {
			in   string
			want [][]int
		}{
			{"[1], [2], [3]", [][]int{{1}, {2}, {3}}},
			{"[[1], [2]]", [][]int{{1}, {2}}},
			{"[[1, 2]]", [][]int{{1, 2}}},
		}
		for _, c := range cases {
			got, err := FromCLI[[][]int](c.in)
			if err != nil {
				t.Errorf("FromCLI(%q): %v", c.in, err)
				continue
			}
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("FromCLI(%q) (-want +got):\n%s", c.in, diff)
			}
		}
	})

	t.Run("scalars", func(t *testing.T) {
		if got, err := FromCLI[int]("123"); err != nil || got != 123 {
			t.Errorf("FromCLI[int] = %d, %v", got, err)
		}
		if _, err := FromCLI[int]("1, 2"); err == nil {
			t.Error("FromCLI[int] accepted two elements")
		}
	})

	t.Run("strings", func(t *testing.T) {
		cases := []struct{ in, want string }{
			{"hello world", "hello world"},
			{`"quoted text"`, "quoted text"},
			{"1,2", "1,2"},
			{"  padded  ", "padded"},
			{"a=b", "a=b"},
		}
		for _, c := range cases {
			got, err := FromCLI[string](c.in)
			if err != nil {
				t.Errorf("FromCLI(%q): %v", c.in, err)
				continue
			}
			if got != c.want {
				t.Errorf("FromCLI(%q) = %q, want %q", c.in, got, c.want)
			}
		}
	})

	t.Run("dicts", func(t *testing.T) {
		cases := []string{"{a=1, b=2}", "a=1, b=2", "a = 1, b = 2"}
		for _, in := range cases {
			got, err := FromCLI[map[string]int](in)
			if err != nil {
				t.Errorf("FromCLI(%q): %v", in, err)
				continue
			}
			if diff := cmp.Diff(map[string]int{"a": 1, "b": 2}, got); diff != "" {
				t.Errorf("FromCLI(%q) (-want +got):\n%s", in, diff)
			}
		}
		if _, err := FromCLI[map[string]int]("a=1, b=2}"); err == nil {
			t.Error("accepted a stray closing brace")
		}
	})
}
