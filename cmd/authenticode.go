package main

import (
	"os"

	"github.com/Velocidex/ordereddict"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

var (
	authenticode_command      = app.Command("authenticode", "Displays the certificate table of the file")
	authenticode_command_file = authenticode_command.Arg("file", "").Required().
					OpenFile(os.O_RDONLY, 0600)

	authenticode_command_raw = authenticode_command.Flag("raw", "Only show the WIN_CERTIFICATE headers").Bool()
)

func doAuthenticode() {
	pe_file := getPEFile(*authenticode_command_file)

	security, err := pe_file.SecurityDirectory()
	reportError(err)
	if security == nil {
		return
	}

	result := []*ordereddict.Dict{}
	for i := 0; i < security.NumberOfCertificates(); i++ {
		entry, _ := security.Entry(i)
		item := ordereddict.NewDict().
			Set("Length", entry.Length).
			Set("Revision", entry.Revision).
			Set("CertificateType", entry.CertificateType)

		if !*authenticode_command_raw {
			info, err := security.CertificateInfo(i)
			kingpin.FatalIfError(err, "Can not parse certificate %d", i)
			item.Set("Info", info)
		}
		result = append(result, item)
	}

	dump(result)
}
