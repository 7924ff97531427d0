package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"clawgen/assets"
	"clawgen/clipboard"
	"clawgen/doctor"
	"clawgen/icon"
	"clawgen/log"
)

var version = "dev"

func run() {
	outFlag := flag.String("out", ".", "Extension root directory (public/ and dist/ trees are created under it)")
	icoFlag := flag.Bool("ico", false, "Also write favicon.ico to public/ and dist/")
	copyFlag := flag.Bool("copy", false, "Copy the square logo to the clipboard as a PNG data URI")
	previewFlag := flag.Bool("preview", false, "Preview the icon in the terminal instead of writing files")
	flag.Bool("gui", false, "Preview the icon set in a window (requires a -tags gui build)")
	doctorFlag := flag.Bool("doctor", false, "Run asset pipeline diagnostics and exit")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	logPathFlag := flag.String("logpath", "", "log directory path (default: OS-specific location, use ./ for current dir)")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("clawgen %s\n", version)
		os.Exit(0)
	}

	if *doctorFlag {
		os.Exit(doctor.Run(*outFlag))
	}

	if *previewFlag {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: -preview needs a terminal")
			os.Exit(1)
		}
		p := tea.NewProgram(newPreviewModel(), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: preview failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	logPath, err := log.ResolveDir(*logPathFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to resolve log directory: %v\n", err)
		os.Exit(1)
	}
	log.SetDir(logPath)
	if err := log.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not init logging: %v\n", err)
	}
	defer log.Close()

	start := time.Now()
	log.RunStart(version, *outFlag)

	layout := assets.Layout{Root: *outFlag}
	written, err := layout.WriteAll()
	reportWritten(written)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		log.Errorf("write failed: %v", err)
		log.Close()
		os.Exit(1)
	}

	if *icoFlag {
		favs, ferr := layout.WriteFavicons()
		reportWritten(favs)
		if ferr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", ferr)
			log.Errorf("favicon write failed: %v", ferr)
			log.Close()
			os.Exit(1)
		}
		written = append(written, favs...)
	}

	if *copyFlag {
		if cerr := clipboard.CopyImage(icon.Render(icon.LogoSize)); cerr != nil {
			fmt.Fprintf(os.Stderr, "Warning: clipboard copy failed: %v\n", cerr)
			log.Warnf("clipboard copy failed: %v", cerr)
		} else {
			fmt.Println("Copied logo-square.png to clipboard as data URI")
		}
	}

	log.RunEnd(len(written), time.Since(start))
	fmt.Println("All icons created successfully!")
}

func reportWritten(ws []assets.Written) {
	for _, w := range ws {
		fmt.Printf("Created %s (%dx%d)\n", w.Path, w.Size, w.Size)
		log.FileWritten(w.Path, w.Size, w.Bytes)
		log.FileRecord(w.Path)
	}
}
