package savedata

import "log/slog"

// ToLog renders data and logs the text once at info level. Without a
// request the output is CSV. A nil logger means [slog.Default].
func ToLog(logger *slog.Logger, data Value, req ...Request) error {
	cfg, text, err := render(data, req)
	if err != nil {
		return err
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("savedata: export", "format", cfg.Format.String(), "name", cfg.Name, "text", string(text))
	return nil
}

// ToFile renders data and hands it to d with the format's MIME type. Any
// extension on the configured filename is replaced by the format's own.
// Without a request the output is CSV.
func ToFile(d Downloader, data Value, req ...Request) error {
	cfg, text, err := render(data, req)
	if err != nil {
		return err
	}
	if d == nil {
		d = FileDownloader{}
	}
	return d.Download(text, MIMEType(cfg.Format), stripExtension(cfg.Filename)+Extension(cfg.Format))
}

// render normalizes the first request, if any, and encodes data in full
// before anything reaches a sink.
func render(data Value, req []Request) (Config, []byte, error) {
	r := Keyword(csvAlias)
	if len(req) > 0 {
		r = req[0]
	}
	cfg, err := Normalize(r)
	if err != nil {
		return Config{}, nil, err
	}
	text, err := Marshal(data, cfg)
	if err != nil {
		return Config{}, nil, err
	}
	return cfg, text, nil
}
