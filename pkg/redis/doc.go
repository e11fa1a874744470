// Package redis connects to the redis instance that backs shared session
// storage when the web client runs with more than one replica.
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//	if cfg.Enabled() {
//		client, err := redis.Connect(ctx, cfg)
//		...
//		store := session.NewRedisStore(client, cfg.KeyPrefix)
//	}
package redis
