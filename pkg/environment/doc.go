// Package environment propagates the current application environment
// (development, staging or production) through context.Context and into
// structured logs.
//
// Values are attached with WithContext and read back with FromContext. Parse
// normalizes raw configuration values such as "prod" or "stage".
//
// # Usage
//
//	ctx := environment.WithContext(ctx, environment.Parse(os.Getenv("APP_ENV")))
//	po.PostContext(ctx, Refresh{})
//
// LoggerExtractor plugs into logger.WithContextExtractors so every record
// logged with that context carries an "env" attribute. The post office and
// the executors log with the context they were given, so their diagnostics
// pick it up.
//
// Missing values result in the zero value ("").
package environment
