package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var ShareCmd = &cobra.Command{
	Use:   "share",
	Short: "Share text and print its code.",
	Long: `Stores the text given with --text, or read from standard input when
--text is absent, and prints the generated share code.

Example:
  codetext share --text "hello world"
  cat notes.txt | codetext share`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, _ := cmd.Flags().GetString("text")
		if !cmd.Flags().Changed("text") {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("failed to read standard input: %w", err)
			}
			text = string(data)
		}

		svc, st, err := openService()
		if err != nil {
			return err
		}
		defer st.Close()

		code, err := svc.Share(cmd.Context(), text)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Your share code is: %s\n", code)
		return nil
	},
}

func init() {
	ShareCmd.Flags().StringP("text", "t", "", "text to share")
	RootCmd.AddCommand(ShareCmd)
}
