package pattern_test

import (
	"fmt"
	"strconv"

	"github.com/getmockd/pattern/pkg/pattern"
)

func ExamplePattern_Parse() {
	p := pattern.New("/{0}/{beta}", pattern.WithTransformer("beta", func(raw string) (any, error) {
		return strconv.Atoi(raw)
	}))

	res, err := p.Parse("/alpha/5")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res)
	// Output: Result("alpha", beta=5)
}

func ExamplePattern_Regex() {
	p := pattern.New("{0}{1}{a}")
	p.Matches["a"] = `[0-9]{2}`

	expr, _ := p.Regex()
	fmt.Println(expr)
	fmt.Println(p.MustParse("123456"))
	// Output:
	// ^(?P<_0>.+?)(?P<_1>.+?)(?P<_a>[0-9]{2})$
	// Result("1", "234", a="56")
}

func ExamplePattern_Replace() {
	p := pattern.New("/{root}/{branch}/{leaf}/{0}")

	s, _ := p.Replace([]any{"d"}, map[string]any{"root": "a", "branch": "b", "leaf": 3})
	fmt.Println(s)
	// Output: /a/b/3/d
}

func ExampleNewPath() {
	_, err := pattern.NewPath("/{0}").Parse("/a/b")
	fmt.Println(err)
	// Output: "/a/b" does not match pattern "/{0}"
}
