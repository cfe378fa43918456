package main

import (
	"io"
	"os"

	"github.com/Velocidex/pkcs7"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
	pe "www.velocidex.com/golang/go-pedir"
)

var (
	cat_command      = app.Command("cat", "Displays a certificate payload extracted from a certificate table.")
	cat_command_file = cat_command.Arg("file", "").Required().OpenFile(os.O_RDONLY, 0600)
)

func doCat() {
	data, err := io.ReadAll(*cat_command_file)
	kingpin.FatalIfError(err, "Can not read file")

	pkcs7_obj, err := pkcs7.Parse(data)
	kingpin.FatalIfError(err, "Can not parse PKCS7")

	dump(pe.PKCS7ToOrderedDict(pkcs7_obj))
}
