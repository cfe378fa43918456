package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	kingpin "gopkg.in/alecthomas/kingpin.v2"
	"www.velocidex.com/golang/binparsergen/reader"
	pe "www.velocidex.com/golang/go-pedir"

	// Required to find utilities.
	_ "www.velocidex.com/golang/binparsergen"
)

var (
	app = kingpin.New("go-pedir", "PE auxiliary directory decoder.")

	debug_flag = app.Flag("debug", "Print decoder debug messages").Bool()

	ignore_invalid_key_flag = app.Flag("ignore_invalid_key",
		"Accept a rich header whose key does not decrypt the DanS signature").Bool()

	info_command      = app.Command("info", "Displays all directories of a pe file.")
	info_command_file = info_command.Arg("file", "").Required().
				OpenFile(os.O_RDONLY, 0600)
)

// Page the file in and tell the decoders how large it is.
func getReader(fd *os.File) io.ReaderAt {
	paged_reader, err := reader.NewPagedReader(fd, 4096, 100)
	kingpin.FatalIfError(err, "Can not open file %s: %v", fd.Name(), err)

	stat, err := fd.Stat()
	kingpin.FatalIfError(err, "Can not stat file %s: %v", fd.Name(), err)

	return pe.NewSizedReader(paged_reader, 0, stat.Size())
}

func getPEFile(fd *os.File) *pe.PEFile {
	pe_file, err := pe.NewPEFile(getReader(fd))
	kingpin.FatalIfError(err, "Can not open file %s: %v (%v)",
		fd.Name(), err, pe.ResultCodeOf(err))
	return pe_file
}

func dump(value interface{}) {
	serialized, _ := json.MarshalIndent(value, "", "  ")
	fmt.Println(string(serialized))
}

func reportError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v (%v)\n", err, pe.ResultCodeOf(err))
	}
}

func doInfo() {
	pe_file := getPEFile(*info_command_file)
	dump(pe_file.Summary(*ignore_invalid_key_flag))
}

func main() {
	app.HelpFlag.Short('h')
	app.UsageTemplate(kingpin.CompactUsageTemplate)
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	if *debug_flag {
		pe.SetDebug(true)
	}

	switch command {

	case info_command.FullCommand():
		doInfo()

	case rich_command.FullCommand():
		doRich()

	case delay_command.FullCommand():
		doDelayImports()

	case symbols_command.FullCommand():
		doSymbols()

	case relocs_command.FullCommand():
		doRelocations()

	case authenticode_command.FullCommand():
		doAuthenticode()

	case cat_command.FullCommand():
		doCat()
	}
}
