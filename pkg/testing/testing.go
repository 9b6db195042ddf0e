package testing

import (
	"os"
	"path"
	"runtime"
)

func init() {
	// cd to the project root so tests share one logs/ dir and relative paths
	//
	//   in some_test.go,
	//   import (
	//     _ "liyu1981.xyz/coldtrack-monitor/pkg/testing"
	//   )

	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "..", "..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}
