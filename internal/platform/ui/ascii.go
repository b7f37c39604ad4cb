// internal/platform/ui/ascii.go
package ui

// Banner para el header principal
const Banner = `
 ┏━┓╻ ╻┏┓ ┏┓ ╻ ╻┏━┓┏━┓╺┳╸
 ┗━┓┃ ┃┣┻┓┣┻┓┃ ┃┣┳┛┗━┓ ┃
 ┗━┛┗━┛┗━┛┗━┛┗━┛╹┗╸┗━┛ ╹ `

// Tagline bajo el banner
const Tagline = "concurrent dns subdomain enumerator"
