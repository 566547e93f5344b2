package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// Day 9: Disk Fragmenter.

const freeBlock = -1

// parseDiskMap expands the dense format into one entry per block, holding the
// file ID or freeBlock.
func parseDiskMap(input string) ([]int, error) {
	dense := strings.TrimSpace(input)
	if dense == "" {
		return nil, &ParseError{Reason: "empty disk map"}
	}
	var blocks []int
	for i := 0; i < len(dense); i++ {
		ch := dense[i]
		if ch < '0' || ch > '9' {
			return nil, &ParseError{Line: 1, Text: dense,
				Reason: fmt.Sprintf("unexpected %q at position %d, want a digit", ch, i+1)}
		}
		id := freeBlock
		if i%2 == 0 {
			id = i / 2
		}
		for n := int(ch - '0'); n > 0; n-- {
			blocks = append(blocks, id)
		}
	}
	return blocks, nil
}

func compactBlocks(blocks []int) {
	left, right := 0, len(blocks)-1
	for {
		for left < right && blocks[left] != freeBlock {
			left++
		}
		for left < right && blocks[right] == freeBlock {
			right--
		}
		if left >= right {
			return
		}
		blocks[left], blocks[right] = blocks[right], freeBlock
	}
}

// compactFiles moves whole files, highest ID first, into the leftmost free
// span that fits.
func compactFiles(blocks []int) {
	end := len(blocks) - 1
	firstFree := 0
	for end >= 0 {
		if blocks[end] == freeBlock {
			end--
			continue
		}
		id := blocks[end]
		start := end
		for start > 0 && blocks[start-1] == id {
			start--
		}
		size := end - start + 1

		for firstFree < len(blocks) && blocks[firstFree] != freeBlock {
			firstFree++
		}
		for i := firstFree; i < start; i++ {
			if blocks[i] != freeBlock {
				continue
			}
			span := 0
			for i+span < start && blocks[i+span] == freeBlock {
				span++
			}
			if span >= size {
				for k := 0; k < size; k++ {
					blocks[i+k] = id
					blocks[start+k] = freeBlock
				}
				break
			}
			i += span
		}
		end = start - 1
	}
}

func checksum(blocks []int) int {
	sum := 0
	for i, id := range blocks {
		if id != freeBlock {
			sum += i * id
		}
	}
	return sum
}

func solveDay09(input string, part int) (string, error) {
	blocks, err := parseDiskMap(input)
	if err != nil {
		return "", err
	}
	if part == 1 {
		compactBlocks(blocks)
	} else {
		compactFiles(blocks)
	}
	return strconv.Itoa(checksum(blocks)), nil
}
