package configs

// Session describes the cookie session written by the login service. The
// board only reads it.
type Session struct {
	Name     string `env:"NAME" envDefault:"mesa-board"`
	Secret   string `env:"SECRET,required,notEmpty"`
	LoginURL string `env:"LOGIN_URL" envDefault:"/login"`
}
