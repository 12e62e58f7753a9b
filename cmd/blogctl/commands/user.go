package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
	"github.com/spf13/cobra"

	"github.com/daniilsolovey/blog-cms/internal/auth"
	"github.com/daniilsolovey/blog-cms/internal/blog"
	"github.com/daniilsolovey/blog-cms/internal/db"
)

var (
	username string
	email    string
	password string
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage administrator accounts",
}

var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an administrator account",
	Long: `Create an administrator account directly in the database.

Examples:
  blogctl user create --username admin --email admin@example.com --password secret1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		user, err := createUser(ctx)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "user %q created with id %d\n", user.Username, user.ID)
		return nil
	},
}

func init() {
	userCreateCmd.Flags().StringVar(&username, "username", "", "login name (3-50 characters)")
	userCreateCmd.Flags().StringVar(&email, "email", "", "email address")
	userCreateCmd.Flags().StringVar(&password, "password", "", "password (at least 6 characters)")
	_ = userCreateCmd.MarkFlagRequired("username")
	_ = userCreateCmd.MarkFlagRequired("email")
	_ = userCreateCmd.MarkFlagRequired("password")

	userCmd.AddCommand(userCreateCmd)
}

func createUser(ctx context.Context) (*blog.User, error) {
	if l := len(username); l < 3 || l > 50 {
		return nil, errors.New("username must be between 3 and 50 characters")
	}
	if len(password) < 6 {
		return nil, errors.New("password must be at least 6 characters")
	}

	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	dbc := pg.Connect(&cfg.Database)
	defer dbc.Close()

	// tokens are not issued on registration
	manager := blog.NewAuthManager(db.New(dbc), auth.NewHasher(auth.DefaultCost), nil)

	user, err := manager.Register(ctx, blog.RegisterInput{
		Username:        username,
		Email:           email,
		Password:        password,
		ConfirmPassword: password,
	})
	if err != nil {
		if msg := blog.Message(err); msg != "" {
			return nil, fmt.Errorf("create user: %s", msg)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}
