package palgen_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing/fstest"

	"github.com/alnah/palgen"
)

// Example generates a Go table from a directory of palettes.
func Example() {
	root, err := os.MkdirTemp("", "palgen-example")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.RemoveAll(root)

	src := filepath.Join(root, "gnuplot-palettes")
	_ = os.Mkdir(src, 0o755)
	_ = os.WriteFile(filepath.Join(src, "jet.pal"), []byte("0 0 0 1 1 1\n"), 0o644)
	_ = os.WriteFile(filepath.Join(src, "gray.pal"), []byte("0 0 0 0 1 1 1\n"), 0o644)

	res, err := palgen.New().Generate(context.Background(), palgen.Request{
		Root:      root,
		SourceDir: "gnuplot-palettes",
		Output:    "palettes/palettes_gen.go",
		Target: palgen.Target{
			Language:  palgen.LanguageGo,
			Namespace: "palettes",
			Table:     "Palettes",
		},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Palettes)
	// Output: [gray jet]
}

// ExampleRender shows the C++ table produced for two palettes.
func ExampleRender() {
	table, err := palgen.LoadTableFS(fstest.MapFS{
		"jet.pal":  {Data: []byte("0 0 0 1 1 1\n")},
		"gray.pal": {Data: []byte("0 0 0 0 1 1 1\n")},
	}, palgen.DefaultExtension)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	out, err := palgen.Render(table, palgen.Target{
		Language:  palgen.LanguageCpp,
		Namespace: "plot",
		Table:     "palletes",
	}, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(string(out))
	// Output:
	// // Code generated by palgen. DO NOT EDIT.
	//
	// // C++ includes
	// #include <map>
	// #include <string>
	//
	// namespace plot {
	//
	// /// Color palettes for gnuplot
	// const std::map<std::string, std::string> palletes = {
	//     { "gray", R"(0 0 0 0 1 1 1
	// )" },
	//     { "jet", R"(0 0 0 1 1 1
	// )" },
	// };
	//
	// } // namespace plot
}

// ExampleNewQuoter shows the escaped C++ form and its inverse.
func ExampleNewQuoter() {
	q, err := palgen.NewQuoter(palgen.LanguageCpp, palgen.QuoteEscaped)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	lit := q.Quote("set palette\n")
	back, _ := q.Unquote(lit)
	fmt.Println(lit)
	fmt.Printf("%q\n", back)
	// Output:
	// "set palette\n"
	// "set palette\n"
}
