// File: inilib/cmd/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"

	"inilib"
)

const usage = `usage: inilib <command> [arguments]

Commands:
  get <file> <section> <key>            print one value
  set <file> <section> <key> <value>    set a value and save the file in place
  del <file> <section> [key]            remove a key, or a whole section, and save in place
  sections <file>                       list section names in document order
  keys <file> <section>                 list keys of a section in document order
  export <file> <out>                   convert to the format of out's extension (.toml/.json/.yaml/.ini)
  run <file> <keyword> [args...]        load file, then invoke a keyword by name
  keywords                              list the keyword names
`

func main() {
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if err := dispatch(context.Background(), args[0], args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "inilib:", err)
		os.Exit(1)
	}
}

func dispatch(ctx context.Context, command string, args []string) error {
	lib := inilib.NewLibrary()

	switch command {
	case "get":
		if len(args) != 3 {
			return fmt.Errorf("get expects <file> <section> <key>")
		}
		if err := lib.LoadIniFile(ctx, args[0]); err != nil {
			return err
		}
		v, err := lib.GetIniValue(ctx, args[1], args[2])
		if err != nil {
			return err
		}
		fmt.Println(v)
		return nil

	case "set":
		if len(args) != 4 {
			return fmt.Errorf("set expects <file> <section> <key> <value>")
		}
		if err := lib.LoadIniFile(ctx, args[0]); err != nil {
			return err
		}
		if err := lib.SetIniValue(ctx, args[1], args[2], args[3]); err != nil {
			return err
		}
		return lib.SaveIniFile(ctx, args[0])

	case "del":
		if len(args) != 2 && len(args) != 3 {
			return fmt.Errorf("del expects <file> <section> [key]")
		}
		if err := lib.LoadIniFile(ctx, args[0]); err != nil {
			return err
		}
		if len(args) == 3 {
			if err := lib.RemoveIniKey(ctx, args[1], args[2]); err != nil {
				return err
			}
		} else {
			if err := lib.RemoveSection(ctx, args[1]); err != nil {
				return err
			}
		}
		return lib.SaveIniFile(ctx, args[0])

	case "sections":
		if len(args) != 1 {
			return fmt.Errorf("sections expects <file>")
		}
		if err := lib.LoadIniFile(ctx, args[0]); err != nil {
			return err
		}
		for _, name := range lib.Store().Sections() {
			fmt.Println(name)
		}
		return nil

	case "keys":
		if len(args) != 2 {
			return fmt.Errorf("keys expects <file> <section>")
		}
		if err := lib.LoadIniFile(ctx, args[0]); err != nil {
			return err
		}
		keys, err := lib.Store().Keys(args[1])
		if err != nil {
			return err
		}
		for _, k := range keys {
			fmt.Println(k)
		}
		return nil

	case "export":
		if len(args) != 2 {
			return fmt.Errorf("export expects <file> <out>")
		}
		if err := lib.LoadIniFile(ctx, args[0]); err != nil {
			return err
		}
		return lib.Store().ExportFile(args[1], "")

	case "run":
		if len(args) < 2 {
			return fmt.Errorf("run expects <file> <keyword> [args...]")
		}
		if err := lib.LoadIniFile(ctx, args[0]); err != nil {
			return err
		}
		result, err := lib.Run(ctx, args[1], args[2:]...)
		if err != nil {
			return err
		}
		printResult(result)
		return nil

	case "keywords":
		for _, name := range lib.Keywords() {
			fmt.Println(name)
		}
		return nil

	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

// printResult renders a keyword result on stdout. Maps print sorted for
// stable output; document order is available through the keys command.
func printResult(result any) {
	switch v := result.(type) {
	case nil:
	case string:
		fmt.Println(v)
	case bool:
		fmt.Println(v)
	case []string:
		for _, item := range v {
			fmt.Println(item)
		}
	case map[string]string:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("%s = %s\n", k, v[k])
		}
	default:
		fmt.Println(v)
	}
}
