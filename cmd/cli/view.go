package main

import (
	"errors"
	"fmt"

	"codetext-backend/internal/services"

	"github.com/spf13/cobra"
)

var ViewCmd = &cobra.Command{
	Use:   "view",
	Short: "Print the text shared under a code.",
	Long: `Looks up a share code (case-insensitive) and prints the stored text.

Example:
  codetext view --code ab12cd`,
	RunE: func(cmd *cobra.Command, args []string) error {
		code, _ := cmd.Flags().GetString("code")

		svc, st, err := openService()
		if err != nil {
			return err
		}
		defer st.Close()

		record, err := svc.Lookup(cmd.Context(), code)
		if errors.Is(err, services.ErrNotFound) {
			return errors.New("code not found: please check the code and try again")
		}
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), record.Content)
		return nil
	},
}

func init() {
	ViewCmd.Flags().StringP("code", "c", "", "share code to look up")
	ViewCmd.MarkFlagRequired("code")
	RootCmd.AddCommand(ViewCmd)
}
