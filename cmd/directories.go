package main

import (
	"os"

	pe "www.velocidex.com/golang/go-pedir"
)

var (
	rich_command      = app.Command("rich", "Decodes the rich header.")
	rich_command_file = rich_command.Arg("file", "").Required().
				OpenFile(os.O_RDONLY, 0600)

	delay_command      = app.Command("delay", "Decodes the delay import directory.")
	delay_command_file = delay_command.Arg("file", "").Required().
				OpenFile(os.O_RDONLY, 0600)

	symbols_command      = app.Command("symbols", "Decodes the COFF symbol table.")
	symbols_command_file = symbols_command.Arg("file", "").Required().
				OpenFile(os.O_RDONLY, 0600)

	relocs_command      = app.Command("relocs", "Decodes the base relocation directory.")
	relocs_command_file = relocs_command.Arg("file", "").Required().
				OpenFile(os.O_RDONLY, 0600)

	relocs_command_max_dir = relocs_command.Flag("max_size",
		"Largest directory to read").Default("104857600").Int64()
)

func doRich() {
	pe_file := getPEFile(*rich_command_file)

	rich, err := pe_file.RichHeader(*ignore_invalid_key_flag)
	reportError(err)
	dump(rich.ToDict())
}

func doDelayImports() {
	pe_file := getPEFile(*delay_command_file)

	delay_imports, err := pe_file.DelayImports()
	reportError(err)
	dump(delay_imports)
}

func doSymbols() {
	pe_file := getPEFile(*symbols_command_file)

	symbols, err := pe_file.CoffSymbols()
	reportError(err)
	if symbols != nil {
		dump(symbols.ToDict())
	}
}

func doRelocations() {
	pe.SetMaxDirectorySize(*relocs_command_max_dir)
	pe_file := getPEFile(*relocs_command_file)

	relocations, err := pe_file.Relocations()
	reportError(err)
	if relocations != nil {
		dump(relocations.ToDict())
	}
}
