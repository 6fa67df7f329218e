package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dgnsrekt/livefeed/internal/feed"
)

func signCmd() *cobra.Command {
	var uid string

	cmd := &cobra.Command{
		Use:   "sign <room_id>",
		Short: "Compute the push socket signature for a numeric room id",
		Long: `Compute the push socket signature for a numeric room id using the
configured signing oracle. Useful for checking a signing script or command
before watching a room.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			signer, err := buildSigner(cfg, logger.Named("sign"))
			if err != nil {
				return err
			}
			if uid == "" {
				uid = feed.NewUserUniqueID()
			}

			params := feed.SignatureParams(args[0], uid)
			fmt.Printf("params:    %s\n", params.Canonical())
			fmt.Printf("stub:      %s\n", params.Stub())

			token, err := signer.Try(cmd.Context(), params)
			if err != nil {
				return err
			}
			fmt.Printf("signature: %s\n", token)
			return nil
		},
	}

	cmd.Flags().StringVar(&uid, "uid", "", "user unique id (random when empty)")

	return cmd
}
