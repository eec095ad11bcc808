// Package cmake renders the generated project's two build descriptors.
package cmake

import (
	"fmt"
	"strings"
)

// minimumVersion pins the oldest CMake release the generated project
// supports.
const minimumVersion = "VERSION 3.1"

// SrcLevel renders the src-level CMakeLists.txt: the executable name, the
// find/config snippets contributed by the include rules, the source list,
// and the link-library tokens, each in accumulation order.
func SrcLevel(project string, snippets, sources, libraries []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "cmake_minimum_required(%s)\n", minimumVersion)
	fmt.Fprintf(&b, "set(EXECUTABLE_NAME %q)\n", project)
	for _, s := range snippets {
		if s == "" {
			continue
		}
		b.WriteString(s)
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "add_executable(${EXECUTABLE_NAME} %s)\n", strings.Join(sources, " "))
	fmt.Fprintf(&b, "target_link_libraries(${EXECUTABLE_NAME} %s)\n", strings.Join(libraries, " "))
	return b.String()
}

// TopLevel renders the fixed top-level CMakeLists.txt.
func TopLevel(project string) string {
	return fmt.Sprintf(`cmake_minimum_required(%s)
project(%s)
set(CMAKE_CXX_STANDARD 14)
set(CMAKE_CXX_FLAGS "${CMAKE_CXX_FLAGS} -Wall -Wextra -pedantic")
add_subdirectory(src)
`, minimumVersion, project)
}
