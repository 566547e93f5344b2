// Package config provides configuration management for aocctl.
//
// Configuration is layered, later sources overriding earlier ones:
//
//  1. Default Configuration (in code)
//     - The 2024 days 1-9 with the builtin engine
//
//  2. User Configuration (~/.config/aocctl/config.yaml)
//
//  3. Project Configuration (./.aocctl/config.yaml)
//     - Lets a solutions repository ship its own page list and solver command
//
//  4. Environment (AOCCTL_ prefix, "__" separates nested keys)
//
// A page list set by a layer replaces the list of the layers below it.
//
// # Configuration Structure
//
//	year: 2024
//	default_page: "Day 03"
//	log_level: info
//	links:
//	  puzzle_template: "https://adventofcode.com/{year}/day/{day}"
//	  code_template: "https://github.com/me/aoc/blob/main/day{day2}/main.go"
//	pages:
//	  - day: 3
//	    name: "Mull It Over"
//	    description: "Scan corrupted memory for `mul(X,Y)` instructions."
//	engine:
//	  type: command            # or "builtin"
//	  command: ["go", "run", "./day{day2}", "-part", "{part}"]
//	  timeout: 30s
//	ui:
//	  dark_mode: true
//	  alt_screen: true
//
// # Environment Overrides
//
//	AOCCTL_YEAR=2023
//	AOCCTL_ENGINE__TYPE=command
//	AOCCTL_ENGINE__COMMAND=./solve,{day},{part}
package config
