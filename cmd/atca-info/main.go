package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"

	"cryptoauth-go/pkg/atca"
)

func main() {
	libPath := flag.String("lib", "", "explicit path to the cryptoauth shared library")
	search := flag.String("search", "", "extra library search directories, colon separated")
	revision := flag.String("revision", "", "4-byte revision block as hex, e.g. 00006002")
	flag.Parse()

	log.Printf("cryptoauth-go version: %s", atca.WrapperVersion())

	if *revision != "" {
		rev, err := hex.DecodeString(*revision)
		if err != nil {
			log.Fatalf("bad revision hex: %v", err)
		}
		name := atca.DeviceName(rev)
		fmt.Printf("revision %x: %s (type id 0x%02X)\n", rev, name, uint8(atca.DeviceTypeID(name)))
	}

	cfg := atca.Config{LibraryPath: *libPath}
	if *search != "" {
		cfg.SearchPaths = strings.Split(*search, ":")
	}

	lib, err := atca.Open(cfg)
	if err != nil {
		if errors.Is(err, atca.ErrCGONotEnabled) || errors.Is(err, atca.ErrNotBuilt) {
			fmt.Printf("library unavailable: %v\n", err)
			return
		}
		log.Fatalf("opening cryptoauth library: %v", err)
	}
	defer func() {
		if cerr := lib.Close(); cerr != nil {
			log.Printf("close error: %v", cerr)
		}
	}()

	ver, err := lib.NativeVersion()
	if err != nil {
		log.Printf("native version unavailable: %v", err)
	} else {
		fmt.Printf("native cryptoauth version: %s\n", ver)
	}

	for _, name := range []string{"atca_aes_cbc_ctx", "atca_sha256_ctx"} {
		fmt.Printf("%s: %d bytes\n", name, lib.SizeOf(name))
	}
}
