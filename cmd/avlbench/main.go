// Command avlbench bulk-loads a word list into avltree.Set and avltree.Map
// and reports timings and rotation counts.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/rsned/avltree"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Printf("Usage: %s wordlist.txt\n", os.Args[0])
		return
	}

	words, err := readWords(os.Args[1])
	if err != nil {
		log.Fatalf("reading %s: %v", os.Args[1], err)
	}
	if len(words) == 0 {
		log.Fatal("word list is empty")
	}
	fmt.Printf("loaded %d words from %s\n", len(words), os.Args[1])

	benchSet(words)
	benchMap(words)
}

func readWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var words []string
	r := bufio.NewReader(file)
	for {
		line, err := r.ReadString('\n')
		if word := trimLine(line); word != "" {
			words = append(words, word)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	return words, nil
}

func trimLine(line string) string {
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return line
}

func benchSet(words []string) {
	s := avltree.NewSet[string]()

	start := time.Now()
	for _, w := range words {
		s.Insert(w)
	}
	insertElapsed := time.Since(start)

	start = time.Now()
	missing := 0
	for _, w := range words {
		if !s.Contains(w) {
			missing++
		}
	}
	lookupElapsed := time.Since(start)
	if missing > 0 {
		log.Fatalf("bench: %d words failed lookup after insertion", missing)
	}

	start = time.Now()
	for i := len(words) - 1; i >= 0; i-- {
		s.Erase(words[i])
	}
	eraseElapsed := time.Since(start)

	if !s.Empty() {
		log.Fatalf("bench: set not empty after erasing every word (size=%d)", s.Size())
	}

	fmt.Printf("Set[string]: insert %v, lookup %v, erase %v (%d words)\n",
		insertElapsed, lookupElapsed, eraseElapsed, len(words))
}

func benchMap(words []string) {
	m := avltree.NewMap[string, int]()
	for i, w := range words {
		m.Insert(w, i)
	}

	stats := m.Stats()
	fmt.Printf("Map[string,int] rotation telemetry after %d inserts:\n", len(words))
	fmt.Printf("  insert: LL=%d LR=%d RL=%d RR=%d\n", stats.InsertLL, stats.InsertLR, stats.InsertRL, stats.InsertRR)

	for i := len(words) - 1; i >= 0; i -= 2 {
		m.Erase(words[i])
	}
	stats = m.Stats()
	fmt.Printf("  erase (half, reverse order): LL=%d LR=%d RL=%d RR=%d\n", stats.EraseLL, stats.EraseLR, stats.EraseRL, stats.EraseRR)
}
