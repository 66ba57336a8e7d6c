package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/userdirectory/internal/client/models"
	"github.com/dmitrijs2005/userdirectory/internal/common"
)

// getSimpleText, getPassword and getMetadata are indirections used to
// facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMetadata   = GetMetadata
)

var errPasswordMismatch = errors.New("passwords do not match")

// readSecret prompts for a password and returns it as a string, wiping the
// raw bytes.
func (a *App) readSecret(prompt string) (string, error) {
	pw, err := getPassword(a.out, prompt)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(pw)
	return string(pw), nil
}

// parseProfile turns "name=value" lines into a profile map.
func parseProfile(lines []string) (map[string]any, error) {
	if len(lines) == 0 {
		return nil, nil
	}
	profile := make(map[string]any, len(lines))
	for _, l := range lines {
		name, value, ok := strings.Cut(l, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid profile line %q, expected name=value", l)
		}
		profile[name] = strings.TrimSpace(value)
	}
	return profile, nil
}

// Register prompts for email, password and optional profile fields and
// creates an account.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := a.readSecret("Enter password")
	if err != nil {
		return err
	}

	lines, err := getMetadata(a.reader, a.out)
	if err != nil {
		return err
	}
	profile, err := parseProfile(lines)
	if err != nil {
		return err
	}

	user, err := a.client.Register(ctx, email, password, profile)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Registered, id=%s\n", user.ID)
	return nil
}

// Login prompts for credentials and starts a session.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := a.readSecret("Enter password")
	if err != nil {
		return err
	}

	if err := a.client.Login(ctx, email, password); err != nil {
		return err
	}

	a.email = email
	fmt.Fprintln(a.out, "Login successful")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.client.Logout()
	a.email = ""
	return nil
}

// Me prints the logged-in user.
func (a *App) Me(ctx context.Context) error {
	user, err := a.client.GetUser(ctx, "")
	if err != nil {
		return err
	}
	a.printUser(user)
	return nil
}

// List prints all users as a table.
func (a *App) List(ctx context.Context) error {
	users, err := a.client.ListUsers(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tEMAIL\tROLE\tCREATED")
	for _, u := range users {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", u.ID, u.Email, u.RoleID, u.CreatedAt)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%d user(s)\n", len(users))
	return nil
}

// Passwd asks for the current password and a new one (twice).
func (a *App) Passwd(ctx context.Context) error {
	oldPass, err := a.readSecret("Current password")
	if err != nil {
		return err
	}
	newPass, err := a.readSecret("New password")
	if err != nil {
		return err
	}
	confirm, err := a.readSecret("Repeat new password")
	if err != nil {
		return err
	}
	if newPass != confirm {
		return errPasswordMismatch
	}

	msg, err := a.client.ChangePassword(ctx, oldPass, newPass)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, msg)
	return nil
}

// Banned prints the ban status of the user with the given id.
func (a *App) Banned(ctx context.Context, id string) error {
	bs, err := a.client.BanStatus(ctx, id)
	if err != nil {
		return err
	}
	if !bs.Banned {
		fmt.Fprintf(a.out, "User %s is not banned\n", id)
		return nil
	}
	fmt.Fprintf(a.out, "User %s is banned (ban #%d, since %s): %s\n", id, bs.BanID, bs.CreatedAt, bs.Reason)
	return nil
}

func (a *App) printUser(u *models.User) {
	fmt.Fprintf(a.out, "ID:      %s\n", u.ID)
	fmt.Fprintf(a.out, "Email:   %s\n", u.Email)
	fmt.Fprintf(a.out, "Role:    %d\n", u.RoleID)
	if u.CreatedAt != "" {
		fmt.Fprintf(a.out, "Created: %s\n", u.CreatedAt)
	}
	if len(u.Profile) > 0 {
		keys := make([]string, 0, len(u.Profile))
		for k := range u.Profile {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fmt.Fprintln(a.out, "Profile:")
		for _, k := range keys {
			fmt.Fprintf(a.out, "  %s = %v\n", k, u.Profile[k])
		}
	}
}
