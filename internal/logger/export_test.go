package logger

var Build = build
