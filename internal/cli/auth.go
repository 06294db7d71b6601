package cli

import (
	"github.com/HardenedIot/console/internal/api"
	"github.com/HardenedIot/console/internal/forms"

	"github.com/spf13/cobra"
)

func newLoginCmd(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and store the session credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			form := forms.Login{Email: email, Password: password}
			if errs := form.Validate(); !errs.Ok() {
				return writeErr(cmd, errValidation(errs))
			}

			sess, _, cleanup, err := app.connect(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			defer cleanup()

			user, err := sess.Login(cmd.Context(), form.Email, form.Password)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": user})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, _, cleanup, err := app.connect(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			defer cleanup()

			if err := sess.Logout(cmd.Context()); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": "logged out"})
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Re-validate the session and print the current user",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, _, cleanup, err := app.connect(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			defer cleanup()

			user, err := sess.CurrentUser(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": user})
		},
	}
}

func newRegisterCmd(app *App) *cobra.Command {
	var form forms.Register

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			// The CLI has no confirmation prompt; the password flag stands for both.
			form.ConfirmPassword = form.Password
			if errs := form.Validate(); !errs.Ok() {
				return writeErr(cmd, errValidation(errs))
			}

			sess, _, cleanup, err := app.connect(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			defer cleanup()

			req := api.RegisterRequest{
				Username: form.Username,
				Name:     form.Name,
				Surname:  form.Surname,
				Email:    form.Email,
				Password: form.Password,
				Private:  form.Private,
			}
			if err := sess.Register(cmd.Context(), req); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": "registered; sign in with `hiot login`"})
		},
	}

	cmd.Flags().StringVar(&form.Username, "username", "", "Username (3-20 characters)")
	cmd.Flags().StringVar(&form.Name, "name", "", "First name")
	cmd.Flags().StringVar(&form.Surname, "surname", "", "Surname")
	cmd.Flags().StringVar(&form.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&form.Password, "password", "", "Password (at least 6 characters)")
	cmd.Flags().BoolVar(&form.Private, "private", false, "Hide the profile from the public directory")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("surname")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
