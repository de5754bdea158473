// Command rentaldeploy bootstraps the rental application's database.
//
//	rentaldeploy deploy            # migrate, create the admin, seed the catalog
//	rentaldeploy admin:create      # only the administrator account
//	rentaldeploy seed              # only the catalog (--catalog for a custom file)
//	rentaldeploy check             # is the deployment usable? (--json, --export, --strict)
//	rentaldeploy migrate
//	rentaldeploy migrate:rollback
//	rentaldeploy migrate:status
//	rentaldeploy serve             # readiness over HTTP and gRPC
//	rentaldeploy route:list
//
// Settings come from config/app.json, .env and the environment, in that
// order of precedence (later wins). Progress goes to stdout; structured logs
// go to stderr.
package main
