package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "User management commands (admin only)",
	}

	cmd.AddCommand(newUserListCmd())
	cmd.AddCommand(newUserCreateCmd())
	cmd.AddCommand(newUserApproveCmd())
	cmd.AddCommand(newUserDeactivateCmd())
	cmd.AddCommand(newUserDeleteCmd())

	return cmd
}

func newUserListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all users",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []UserResult

			if err := client.Get("/api/v1/admin/users", &result); err != nil {
				return err
			}

			printJSON(result)
			return nil
		},
	}
}

func newUserCreateCmd() *cobra.Command {
	var user, email, pass, role string
	var approved bool

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user directly, bypassing the approval queue",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"username": user,
				"email":    email,
				"password": pass,
				"role":     role,
				"approved": approved,
			}
			var result UserResult

			if err := client.Post("/api/v1/admin/users", req, &result); err != nil {
				return err
			}

			printJSON(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Username (required)")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&pass, "pass", "", "Password (required)")
	cmd.Flags().StringVar(&role, "role", "user", "Role (user or admin)")
	cmd.Flags().BoolVar(&approved, "approved", true, "Whether the account is pre-approved")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("pass")

	return cmd
}

func newUserApproveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "approve <user-id>",
		Short: "Approve a pending registration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result UserResult

			path := fmt.Sprintf("/api/v1/admin/users/%s/approve", args[0])
			if err := client.Post(path, nil, &result); err != nil {
				return err
			}

			printJSON(result)
			return nil
		},
	}
}

func newUserDeactivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deactivate <user-id>",
		Short: "Deactivate a user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result UserResult

			path := fmt.Sprintf("/api/v1/admin/users/%s/deactivate", args[0])
			if err := client.Post(path, nil, &result); err != nil {
				return err
			}

			printJSON(result)
			return nil
		},
	}
}

func newUserDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <user-id>",
		Short: "Delete a user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/admin/users/%s", args[0])
			if err := client.Delete(path, nil); err != nil {
				return err
			}

			fmt.Println("deleted")
			return nil
		},
	}
}
