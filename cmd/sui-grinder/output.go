package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/screa/sui-address-grinder/pkg/types"
)

const separator = "===================================================="

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

func printSolution(w io.Writer, s *types.Solution, color bool) {
	row := func(label, value string) {
		if color {
			label, value = labelStyle.Render(label), valueStyle.Render(value)
		}
		fmt.Fprintf(w, "%s\t%s\n", label, value)
	}

	fmt.Fprintln(w, separator)
	row("Address:", s.Address)
	row("Seed phrase:", s.Secret.Mnemonic)
	row("Private key:", s.Secret.PrivateKey)
	fmt.Fprintln(w, separator)
}
