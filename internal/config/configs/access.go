package configs

// Access configures how principals are classified. FullAccessRoles may
// trigger refreshes and mutations; everyone else is read-only. ReadOnlyUsers
// forces read-only access for the listed user ids or emails whatever their
// role.
type Access struct {
	FullAccessRoles []string `env:"FULL_ACCESS_ROLES" envDefault:"admin,editor" envSeparator:","`
	ReadOnlyUsers   []string `env:"READONLY_USERS" envSeparator:","`
}
