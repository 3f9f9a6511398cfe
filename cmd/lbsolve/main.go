package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"strconv"
	"strings"

	solver "github.com/illiteratecoder/letter-boxed-solver"
	"github.com/illiteratecoder/letter-boxed-solver/internal"
)

const defaultDict = "dictionary.txt"

func main() {
	letters := flag.String("letters", "", "The puzzle letters, entire walls typed in consecutively")
	numWords := flag.Int("words", 0, "The number of words in a solution")
	dict := flag.String("dict", "", "The dictionary file to use")
	out := flag.String("out", "", "Write solutions to this file instead of stdout")

	profile := flag.Bool("profile", false, "Profile the solver")
	profileFile := flag.String("profile-file", "cpu.pprof", "The file to write the CPU profile to")
	memoryProfileFile := flag.String("memory-profile-file", "mem.pprof", "The file to write the memory profile to")

	flag.Parse()

	in := bufio.NewReader(os.Stdin)

	dictFilename := *dict
	if dictFilename == "" {
		dictFilename = promptDictionary(in)
	}

	board, err := boardFromInput(in, *letters)
	if err != nil {
		fmt.Println("Error building the puzzle:", err)
		os.Exit(1)
	}

	index, err := buildIndex(board, dictFilename)
	if err != nil {
		fmt.Println("Error reading dictionary:", err)
		os.Exit(1)
	}
	fmt.Printf("Kept %d candidate words\n", index.NumWords())

	n := *numWords
	if n == 0 {
		n = promptNumWords(in, board)
	}

	var mf *os.File
	if *profile {
		f, err := os.Create(*profileFile)
		if err != nil {
			fmt.Println("Error creating profile file:", err)
			os.Exit(1)
		}
		defer f.Close()

		mf, err = os.Create(*memoryProfileFile)
		if err != nil {
			fmt.Println("Error creating memory profile file:", err)
			os.Exit(1)
		}
		defer mf.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Println("Error starting CPU profile:", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	if n > 2 {
		fmt.Println("Please be patient, finding all solutions can take a few minutes for n > 2.")
	}

	solutions, err := solver.Solve(board, index, n)
	if err != nil {
		fmt.Println("Error solving:", err)
		os.Exit(1)
	}

	fmt.Printf("%d solution(s) found!\n", len(solutions))

	dest := *out
	if dest == "" && len(solutions) > 0 && *letters == "" {
		// Interactive session: offer to save, like any hand-run solve.
		fmt.Print("Would you like to save them to a file? (y/n): ")
		if line, _ := in.ReadString('\n'); strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), "y") {
			fmt.Print("Enter the output filename: ")
			line, _ = in.ReadString('\n')
			dest = strings.TrimSpace(line)
		}
	}

	if err := writeSolutions(dest, solutions); err != nil {
		fmt.Println("Error writing solutions:", err)
		os.Exit(1)
	}

	if mf != nil {
		pprof.WriteHeapProfile(mf)
	}

	fmt.Println("Have a nice day!")
}

func promptDictionary(in *bufio.Reader) string {
	fmt.Printf("Enter the filename of the dictionary you want to use (hit enter for %q): ", defaultDict)
	for {
		line, err := in.ReadString('\n')
		name := strings.TrimSpace(line)
		if name == "" {
			return defaultDict
		}
		if _, serr := os.Stat(name); serr == nil {
			return name
		}
		if err != nil {
			// Out of input; fall back rather than re-prompt forever.
			fmt.Printf("File %q does not exist, using %q.\n", name, defaultDict)
			return defaultDict
		}
		fmt.Printf("File %q does not exist. Please try again: ", name)
	}
}

func boardFromInput(in *bufio.Reader, letters string) (*solver.Board, error) {
	if letters != "" {
		return solver.NewBoard(strings.ToUpper(letters))
	}

	fmt.Print("Enter each letter such that entire walls are typed in consecutively: ")
	for {
		line, err := in.ReadString('\n')
		if err != nil && strings.TrimSpace(line) == "" {
			return nil, err
		}

		board, berr := solver.NewBoard(strings.ToUpper(strings.TrimSpace(line)))
		if berr == nil {
			return board, nil
		}
		fmt.Printf("%v. Please try again: ", berr)
	}
}

func promptNumWords(in *bufio.Reader, board *solver.Board) int {
	maxWords := solver.MaxWords(board)
	fmt.Print("Please enter the number of words you want in your solution: ")
	for {
		line, rerr := in.ReadString('\n')
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && n >= 1 && n <= maxWords {
			return n
		}
		if rerr != nil {
			fmt.Printf("Please enter a number between 1 and %d.\n", maxWords)
			os.Exit(1)
		}
		fmt.Printf("Please enter a number between 1 and %d: ", maxWords)
	}
}

func buildIndex(board *solver.Board, dictFilename string) (*solver.WordIndex, error) {
	f, err := os.Open(dictFilename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stream, streamErr := internal.Words(f)
	index := solver.BuildIndex(board, stream)
	if err := streamErr(); err != nil {
		return nil, err
	}
	return index, nil
}

func writeSolutions(dest string, solutions []solver.Solution) error {
	w := os.Stdout
	if dest != "" {
		f, err := os.Create(dest)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	bw := bufio.NewWriter(w)
	for _, solution := range solutions {
		fmt.Fprintln(bw, solution)
	}
	return bw.Flush()
}
