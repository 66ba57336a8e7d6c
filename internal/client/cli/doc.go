// Package cli provides the interactive userdirectory command-line client.
//
// It wires configuration, the gRPC client and a small REPL. Commands:
//
//	register          create an account (email, password, optional profile)
//	login / logout    start or end a session
//	me                show the logged-in user
//	list              list all users
//	passwd            change the password
//	banned <id>       show a user's ban status
//	exit | quit       leave the program
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
