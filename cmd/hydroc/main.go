// Command hydroc compiles a single source file to native assembly and
// invokes the platform assembler and linker to produce a runnable binary.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"hydroc/pkg/compiler"
	"hydroc/pkg/utils"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: hydroc [-arch amd64|arm64] [-keep-asm] <path-to-source>\n")
}

func defaultArch() compiler.Arch {
	if runtime.GOARCH == "arm64" {
		return compiler.ARM64
	}
	return compiler.AMD64
}

func parseArch(name string) (compiler.Arch, error) {
	switch strings.ToLower(name) {
	case "amd64", "x86_64":
		return compiler.AMD64, nil
	case "arm64", "aarch64":
		return compiler.ARM64, nil
	default:
		return 0, fmt.Errorf("unknown -arch %q (want amd64 or arm64)", name)
	}
}

func main() {
	archFlag := flag.String("arch", "", "target architecture: amd64 or arm64 (default: host architecture)")
	keepAsm := flag.Bool("keep-asm", false, "keep the generated .s file after assembling")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	srcPath := flag.Arg(0)

	arch := defaultArch()
	if *archFlag != "" {
		a, err := parseArch(*archFlag)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		arch = a
	}

	fullPath, _, err := utils.GetPathInfo(srcPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "path error:", err)
		os.Exit(1)
	}

	sourceBytes, err := os.ReadFile(fullPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "read error:", err)
		os.Exit(1)
	}
	src := string(sourceBytes)

	tokens, err := compiler.Lex(src)
	if err != nil {
		fmt.Fprintln(os.Stderr, "lex error:", err)
		os.Exit(1)
	}

	prog, err := compiler.Parse(tokens, src)
	if err != nil {
		fmt.Fprintln(os.Stderr, "parse error:", err)
		os.Exit(1)
	}

	backend, err := arch.Backend()
	if err != nil {
		fmt.Fprintln(os.Stderr, "backend error:", err)
		os.Exit(1)
	}

	asm, err := compiler.Generate(prog, backend)
	if err != nil {
		fmt.Fprintln(os.Stderr, "codegen error:", err)
		os.Exit(1)
	}

	asmPath := strings.TrimSuffix(fullPath, filepath.Ext(fullPath)) + ".s"
	if err := os.WriteFile(asmPath, []byte(asm), 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "write error:", err)
		os.Exit(1)
	}
	if !*keepAsm {
		defer os.Remove(asmPath)
	}

	binPath := strings.TrimSuffix(fullPath, filepath.Ext(fullPath))
	if err := assembleAndLink(arch, asmPath, binPath); err != nil {
		fmt.Fprintln(os.Stderr, "assemble/link error:", err)
		os.Exit(1)
	}

	fmt.Println(binPath)
}

// assembleAndLink shells out to the platform assembler and linker. This is
// the one part of the pipeline that is not unit-testable from within the
// module: it depends on tools found on PATH.
func assembleAndLink(arch compiler.Arch, asmPath, binPath string) error {
	objPath := binPath + ".o"
	defer os.Remove(objPath)

	switch arch {
	case compiler.AMD64:
		if err := run("nasm", "-f", "elf64", asmPath, "-o", objPath); err != nil {
			return err
		}
		return run("ld", objPath, "-o", binPath)
	case compiler.ARM64:
		if err := run("as", "-arch", "arm64", asmPath, "-o", objPath); err != nil {
			return err
		}
		return run("ld", "-e", "_main", "-arch", "arm64", "-lSystem", objPath, "-o", binPath)
	default:
		return fmt.Errorf("no assembler configured for architecture %d", int(arch))
	}
}

func run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
