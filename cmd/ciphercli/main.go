// Command ciphercli is a non-interactive client for the classical cipher
// toolkit: it reads text from a flag, a file, or stdin, applies the selected
// cipher, and writes the result to stdout or a file.
package main

import (
	"fmt"
	"io"
	"os"

	"ciphertool-backend/cipher"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ciphercli",
	Short: "Classical cipher toolkit",
	Long: `Encrypt or decrypt text with one of the classical ciphers.

INPUT METHODS:
  ciphercli encrypt --cipher additive --shift 9 --text "Aleena"
  ciphercli encrypt --cipher vigenere --keyword nadeem --file input.txt
  echo "minahil" | ciphercli encrypt --cipher railfence --depth 2

Run "ciphercli list" to see every cipher and its key shape.`,
}

var encryptCmd = &cobra.Command{
	Use:   "encrypt",
	Short: "Encrypt text with the selected cipher",
	RunE:  func(cmd *cobra.Command, args []string) error { return runTransform(cmd, true) },
}

var decryptCmd = &cobra.Command{
	Use:   "decrypt",
	Short: "Decrypt text with the selected cipher",
	RunE:  func(cmd *cobra.Command, args []string) error { return runTransform(cmd, false) },
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available ciphers and their key shapes",
	Run: func(cmd *cobra.Command, args []string) {
		for _, info := range cipher.Catalog() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-15s %s\n", info.Name, info.Description)
			fmt.Fprintf(cmd.OutOrStdout(), "%-15s key: %s\n", "", info.KeyShape)
		}
	},
}

func init() {
	for _, cmd := range []*cobra.Command{encryptCmd, decryptCmd} {
		cmd.Flags().StringP("cipher", "c", "", "Cipher to use (see \"ciphercli list\")")
		cmd.Flags().StringP("text", "t", "", "Text to transform")
		cmd.Flags().StringP("file", "f", "", "File to transform")
		cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")

		// Key material; each cipher reads the flags its key shape names.
		cmd.Flags().Int("shift", 0, "Shift for the additive cipher")
		cmd.Flags().Int("key-a", 0, "Multiplier for the multiplicative and affine ciphers")
		cmd.Flags().Int("key-b", 0, "Offset for the affine cipher")
		cmd.Flags().StringP("keyword", "k", "", "Keyword for the word-keyed ciphers")
		cmd.Flags().String("second-keyword", "", "Second keyword for double transposition")
		cmd.Flags().Int("depth", 0, "Rail depth for railfence and combination")

		_ = cmd.MarkFlagRequired("cipher")
	}

	rootCmd.AddCommand(encryptCmd, decryptCmd, listCmd)
}

func runTransform(cmd *cobra.Command, encrypt bool) error {
	name, _ := cmd.Flags().GetString("cipher")

	text, err := getInputText(cmd)
	if err != nil {
		return fmt.Errorf("failed to get input text: %w", err)
	}

	instance, err := cipher.New(name, keyFromFlags(cmd))
	if err != nil {
		return err
	}

	var result string
	if encrypt {
		result, err = instance.Encrypt(text)
	} else {
		result, err = instance.Decrypt(text)
	}
	if err != nil {
		return err
	}

	return writeOutput(result, cmd)
}

func keyFromFlags(cmd *cobra.Command) cipher.Key {
	shift, _ := cmd.Flags().GetInt("shift")
	a, _ := cmd.Flags().GetInt("key-a")
	b, _ := cmd.Flags().GetInt("key-b")
	keyword, _ := cmd.Flags().GetString("keyword")
	second, _ := cmd.Flags().GetString("second-keyword")
	depth, _ := cmd.Flags().GetInt("depth")
	return cipher.Key{
		Shift:         shift,
		A:             a,
		B:             b,
		Keyword:       keyword,
		SecondKeyword: second,
		Depth:         depth,
	}
}

func getInputText(cmd *cobra.Command) (string, error) {
	if text, _ := cmd.Flags().GetString("text"); text != "" {
		return text, nil
	}

	if filename, _ := cmd.Flags().GetString("file"); filename != "" {
		data, err := os.ReadFile(filename)
		if err != nil {
			return "", fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		return string(data), nil
	}

	// Read from stdin if piped
	if stat, err := os.Stdin.Stat(); err == nil && (stat.Mode()&os.ModeCharDevice) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	return "", nil
}

func writeOutput(text string, cmd *cobra.Command) error {
	outputFile, _ := cmd.Flags().GetString("output")

	if outputFile == "" {
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	}

	return os.WriteFile(outputFile, []byte(text), 0600)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
