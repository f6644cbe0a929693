package main

import (
	"fmt"
	"log"
	"os"
	"slices"
	"strconv"

	"gridkit/geo"
	"gridkit/input"
	"gridkit/mathx"
)

func main() {
	if len(os.Args) < 4 {
		log.Fatalf("usage: %s <positions file> <max_x> <max_y>", os.Args[0])
	}

	maxX, err := strconv.Atoi(os.Args[2])
	if err != nil {
		log.Fatal(err)
	}
	maxY, err := strconv.Atoi(os.Args[3])
	if err != nil {
		log.Fatal(err)
	}

	area, err := geo.WithMax(maxX, maxY)
	if err != nil {
		log.Fatal(err)
	}

	lines, err := input.AllLines(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}

	var positions []geo.Pos[int]
	for _, line := range lines {
		if line == "" {
			continue
		}
		p, err := geo.ParsePos[int](line)
		if err != nil {
			log.Fatal(err)
		}
		positions = append(positions, p)
	}

	inside := make(map[geo.Pos[int]]bool)
	for p := range area.FilterPositions(slices.Values(positions)) {
		inside[p] = true
		fmt.Println(p)
	}
	fmt.Printf("%d of %d positions inside a %dx%d grid (tile %d)\n",
		len(inside), len(positions), area.Cols(), area.Rows(), mathx.GCD(area.Cols(), area.Rows()))

	// Top row first: larger y means further up.
	for y := area.MaxY; y >= area.MinY; y-- {
		for x := area.MinX; x <= area.MaxX; x++ {
			if inside[geo.NewPos(x, y)] {
				fmt.Print("X ")
			} else {
				fmt.Print(". ")
			}
		}
		fmt.Println()
	}
}
