package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mkarpushin/shopfront/internal/cache/querykey"
	"github.com/mkarpushin/shopfront/internal/domain"
)

// CLI для отладки ключей кэша каталога: читает фильтры (JSON, по одному
// на строку) и печатает канонический ключ для каждого. Семантически
// одинаковые фильтры должны давать одинаковые строки.

type filterInput struct {
	Search     string   `json:"search"`
	Categories []string `json:"categories"`
	Brands     []string `json:"brands"`
	Sizes      []string `json:"sizes"`
	MinPrice   *int64   `json:"min_price"`
	MaxPrice   *int64   `json:"max_price"`
	SortBy     string   `json:"sort_by"`
}

func parseFilter(line string) (*domain.ProductFilter, error) {
	dec := json.NewDecoder(strings.NewReader(line))
	dec.DisallowUnknownFields()

	var in filterInput
	if err := dec.Decode(&in); err != nil {
		return nil, err
	}
	return &domain.ProductFilter{
		Search:        in.Search,
		Categories:    in.Categories,
		Brands:        in.Brands,
		Sizes:         in.Sizes,
		MinPriceCents: in.MinPrice,
		MaxPriceCents: in.MaxPrice,
		SortBy:        in.SortBy,
	}, nil
}

func main() {
	inputPath := flag.String("in", "", "path to input (filter JSON per line). If empty, reads from stdin.")
	flag.Parse()

	in := os.Stdin
	if *inputPath != "" {
		f, err := os.Open(*inputPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open input: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	bad := 0
	sc := bufio.NewScanner(in)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		f, err := parseFilter(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "line %d: %v\n", lineNo, err)
			bad++
			continue
		}
		fmt.Println(querykey.Key(f))
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "read input: %v\n", err)
		os.Exit(1)
	}
	if bad > 0 {
		os.Exit(1)
	}
}
