package cmake

import (
	"strings"
	"testing"
)

func TestSrcLevel(t *testing.T) {
	got := SrcLevel("demo",
		[]string{"find_package(Threads REQUIRED)"},
		[]string{"hello.cpp", "util.hpp"},
		[]string{"${CMAKE_THREAD_LIBS_INIT}"})
	want := `cmake_minimum_required(VERSION 3.1)
set(EXECUTABLE_NAME "demo")
find_package(Threads REQUIRED)
add_executable(${EXECUTABLE_NAME} hello.cpp util.hpp)
target_link_libraries(${EXECUTABLE_NAME} ${CMAKE_THREAD_LIBS_INIT})
`
	if got != want {
		t.Fatalf("SrcLevel = %q, want %q", got, want)
	}
}

func TestSrcLevel_NoSnippets(t *testing.T) {
	got := SrcLevel("demo", nil, []string{"hello.cpp"}, nil)
	want := `cmake_minimum_required(VERSION 3.1)
set(EXECUTABLE_NAME "demo")
add_executable(${EXECUTABLE_NAME} hello.cpp)
target_link_libraries(${EXECUTABLE_NAME} )
`
	if got != want {
		t.Fatalf("SrcLevel = %q, want %q", got, want)
	}
}

func TestSrcLevel_SkipsEmptySnippets(t *testing.T) {
	got := SrcLevel("demo", []string{"", "find_package(PNG REQUIRED)"}, []string{"a.cpp"}, []string{"${PNG_LIBRARIES}"})
	if strings.Contains(got, "\n\n") {
		t.Fatalf("empty snippet produced a blank line:\n%s", got)
	}
	if !strings.Contains(got, "find_package(PNG REQUIRED)\n") {
		t.Fatalf("missing snippet:\n%s", got)
	}
}

func TestTopLevel(t *testing.T) {
	got := TopLevel("demo")
	for _, line := range []string{
		"cmake_minimum_required(VERSION 3.1)",
		"project(demo)",
		"set(CMAKE_CXX_STANDARD 14)",
		`set(CMAKE_CXX_FLAGS "${CMAKE_CXX_FLAGS} -Wall -Wextra -pedantic")`,
		"add_subdirectory(src)",
	} {
		if !strings.Contains(got, line+"\n") {
			t.Fatalf("missing %q in:\n%s", line, got)
		}
	}
}
