/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package cmd

import (
	"encoding/json"
	stderrors "errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/suparena/storemeter/cursor"
	"github.com/suparena/storemeter/storagemodels"
)

func newCursorCmd(a *app) *cobra.Command {
	var schemaFlag, table string

	cursorCmd := &cobra.Command{
		Use:   "cursor",
		Short: "Encode and decode next-page tokens",
	}
	cursorCmd.PersistentFlags().StringVar(&schemaFlag, "schema", "", "Key schema, e.g. PK:S,SK:S")
	cursorCmd.PersistentFlags().StringVarP(&table, "table", "t", "", "Use the key schema configured for this table")

	codec := func() (*cursor.Codec, error) {
		schema, err := a.resolveSchema(schemaFlag, table)
		if err != nil {
			return nil, err
		}
		return cursor.New(schema)
	}

	encodeCmd := &cobra.Command{
		Use:   "encode [key-json]",
		Short: "Encode a JSON key into a token",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := codec()
			if err != nil {
				return err
			}
			var data []byte
			if len(args) == 1 {
				data = []byte(args[0])
			} else if data, err = readInput(cmd, nil); err != nil {
				return err
			}
			rec, err := storagemodels.RecordFromJSON(data)
			if err != nil {
				return err
			}
			token, err := c.Encode(storagemodels.Key(rec))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	decodeCmd := &cobra.Command{
		Use:   "decode <token>",
		Short: "Decode a token into its JSON key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := codec()
			if err != nil {
				return err
			}
			key, err := c.Decode(args[0])
			if err != nil {
				a.logger.WithError(stderrors.Unwrap(err)).Debug("token rejected")
				return err
			}
			if cursor.IsNoCursor(key) {
				fmt.Fprintln(cmd.OutOrStdout(), "null")
				return nil
			}
			out, err := json.Marshal(key)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cursorCmd.AddCommand(encodeCmd, decodeCmd)
	return cursorCmd
}
